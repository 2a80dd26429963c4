package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcsullivan216/dowdirectory/internal/directory"
	"github.com/jcsullivan216/dowdirectory/internal/export"
	"github.com/jcsullivan216/dowdirectory/internal/pagesource"
	"github.com/jcsullivan216/dowdirectory/internal/report"
	"github.com/spf13/cobra"
)

var (
	inputDir        string
	singleFile      string
	chunkPattern    string
	outputName      string
	outputFormat    string
	noRelationships bool
	quiet           bool
	headerMaxLen    int
)

const relationshipsName = "dow_directory_relationships.csv"

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract records from directory page dumps",
	Long: `Parse one directory file or a set of chunk files and write the extracted
personnel records and organizational relationships next to the input.

Chunk files named like dow_directory_pages_41_to_80.pdf are processed in
name order with their page numbers shifted to document order, and all chunks
share one hierarchy context so organizations opened in an earlier chunk still
attribute people in a later one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(cmd)
	},
}

func init() {
	parseCmd.Flags().StringVarP(&inputDir, "input", "i", ".", "Directory holding the chunk files")
	parseCmd.Flags().StringVar(&singleFile, "single", "", "Parse one file instead of a chunk set")
	parseCmd.Flags().StringVar(&chunkPattern, "pattern", "dow_directory_pages_*.pdf", "Glob pattern for chunk files inside --input")
	parseCmd.Flags().StringVarP(&outputName, "output", "o", "dow_directory_extracted.csv", "Records output filename")
	parseCmd.Flags().StringVar(&outputFormat, "format", "csv", "Output format: csv or xlsx")
	parseCmd.Flags().BoolVar(&noRelationships, "no-relationships", false, "Skip writing the relationships file")
	parseCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the quality report")
	parseCmd.Flags().IntVar(&headerMaxLen, "service-header-max-len", 100, "Length ceiling for a line to count as a service header")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command) error {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelWarn
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if outputFormat != "csv" && outputFormat != "xlsx" {
		return fmt.Errorf("unknown format %q (want csv or xlsx)", outputFormat)
	}

	var files []string
	outDir := inputDir
	if singleFile != "" {
		files = []string{singleFile}
		outDir = filepath.Dir(singleFile)
	} else {
		var err error
		files, err = pagesource.ChunkFiles(inputDir, chunkPattern)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matching %q in %s", chunkPattern, inputDir)
	}

	// One parser across all chunks keeps the hierarchy context flowing from
	// chunk to chunk.
	cfg := directory.DefaultConfig()
	cfg.ServiceHeaderMaxLen = headerMaxLen
	parser := directory.NewParser(cfg, log)

	for _, file := range files {
		pages, err := pagesource.ReadPages(file, pagesource.ChunkOffset(file))
		if err != nil {
			return err
		}
		log.Info("parsing chunk", "file", filepath.Base(file), "pages", len(pages))
		parser.ParseCorpus(pages)
	}

	records := directory.DedupeRecords(parser.Records())
	rels := directory.DedupeRelationships(parser.Relationships())
	log.Info("extraction complete", "records", len(records), "relationships", len(rels))

	if outputFormat == "xlsx" {
		path := filepath.Join(outDir, xlsxName(outputName))
		if err := writeWorkbookFile(path, records, rels); err != nil {
			return err
		}
		log.Info("wrote workbook", "path", path)
	} else {
		recordsPath := filepath.Join(outDir, outputName)
		if err := writeCSVFile(recordsPath, func(f *os.File) error {
			return export.WriteRecordsCSV(f, records)
		}); err != nil {
			return err
		}
		log.Info("wrote records", "path", recordsPath)

		if !noRelationships {
			relsPath := filepath.Join(outDir, relationshipsName)
			if err := writeCSVFile(relsPath, func(f *os.File) error {
				return export.WriteRelationshipsCSV(f, rels)
			}); err != nil {
				return err
			}
			log.Info("wrote relationships", "path", relsPath)
		}
	}

	if !quiet {
		report.Render(cmd.OutOrStdout(), report.Build(records, rels))
	}
	return nil
}

func xlsxName(name string) string {
	if strings.HasSuffix(name, ".csv") {
		return strings.TrimSuffix(name, ".csv") + ".xlsx"
	}
	if !strings.HasSuffix(name, ".xlsx") {
		return name + ".xlsx"
	}
	return name
}

func writeCSVFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeWorkbookFile(path string, records []directory.PersonRecord, rels []directory.Relationship) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteWorkbook(f, records, rels); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
