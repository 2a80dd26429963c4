package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
	"github.com/jcsullivan216/dowdirectory/internal/pagesource"
	"github.com/jcsullivan216/dowdirectory/internal/report"
)

// Worker processes a single extraction job.
type Worker struct {
	log       *slog.Logger
	parserCfg directory.Config
}

func NewWorker(log *slog.Logger, parserCfg directory.Config) *Worker {
	return &Worker{
		log:       log,
		parserCfg: parserCfg,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Acquire pages.
	job.SetStatus(StatusParsing, "parsing")
	src, err := pagesource.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	data := job.FileData()
	job.ContentHash = ContentHashHex(data)

	pages, err := src.Pages(bytes.NewReader(data), job.Filename)
	if err != nil {
		log.Error("page extraction failed", "error", err)
		job.AddError(fmt.Sprintf("pages: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetPagesTotal(len(pages))
	log.Info("pages acquired", "pages", len(pages))

	if len(pages) == 0 {
		job.AddError("no pages in document")
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Extract records page by page. Pages share one parser so the
	// hierarchy context carries across page boundaries.
	job.SetStatus(StatusExtracting, "extracting")
	parser := directory.NewParser(w.parserCfg, log)
	for _, page := range pages {
		select {
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "extracting")
			return
		default:
		}
		parser.ParsePage(page.Number, page.Text)
		job.IncrPagesParsed()
	}

	records := directory.DedupeRecords(parser.Records())
	rels := directory.DedupeRelationships(parser.Relationships())
	rep := report.Build(records, rels)

	job.SetResults(records, rels, &rep)
	log.Info("extraction complete", "records", len(records), "relationships", len(rels))
	job.SetStatus(StatusCompleted, "done")
}
