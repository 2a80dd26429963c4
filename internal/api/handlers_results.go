package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jcsullivan216/dowdirectory/internal/export"
	"github.com/jcsullivan216/dowdirectory/internal/pipeline"
)

// completedJob fetches a job and checks it finished, writing the error
// response itself when it did not.
func (s *Server) completedJob(w http.ResponseWriter, r *http.Request) (*pipeline.Job, bool) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return nil, false
	}
	snap := job.Snapshot()
	if snap.Status != pipeline.StatusCompleted {
		jsonError(w, "job is "+string(snap.Status)+", results not ready", http.StatusConflict)
		return nil, false
	}
	return job, true
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	job, ok := s.completedJob(w, r)
	if !ok {
		return
	}
	records := job.Records()

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="dow_directory_extracted.csv"`)
		if err := export.WriteRecordsCSV(w, records); err != nil {
			s.log.Error("csv export failed", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":   len(records),
		"records": records,
	})
}

func (s *Server) handleRelationships(w http.ResponseWriter, r *http.Request) {
	job, ok := s.completedJob(w, r)
	if !ok {
		return
	}
	rels := job.Relationships()

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="dow_directory_relationships.csv"`)
		if err := export.WriteRelationshipsCSV(w, rels); err != nil {
			s.log.Error("csv export failed", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"count":         len(rels),
		"relationships": rels,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	job, ok := s.completedJob(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Report())
}
