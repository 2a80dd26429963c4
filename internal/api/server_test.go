package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jcsullivan216/dowdirectory/internal/config"
	"github.com/jcsullivan216/dowdirectory/internal/pipeline"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) (*httptest.Server, *pipeline.Orchestrator) {
	t.Helper()
	cfg := config.Config{
		APIKey:              testAPIKey,
		ServiceHeaderMaxLen: 100,
		WindowLines:         3,
		WorkerCount:         1,
		MaxQueueSize:        10,
		MaxUploadBytes:      1 << 20,
		JobTTL:              time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := pipeline.NewOrchestrator(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	orch.Start(ctx)
	t.Cleanup(cancel)

	srv := httptest.NewServer(NewServer(orch, log, cfg))
	t.Cleanup(srv.Close)
	return srv, orch
}

func uploadFile(t *testing.T, srv *httptest.Server, filename, content string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(fw, content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/extract", &body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testAPIKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func authGet(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func TestHealthIsPublic(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/extract/nope/status")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without bearer token, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/extract/nope/status", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 with bad key, got %d", resp2.StatusCode)
	}
}

func TestExtractFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	content := strings.Join([]string{
		"Portfolio Acquisition Executive (RDA)",
		"Program Executive Office Aviation (PEO AVN)",
		"COL John A. Smith",
		"Program Manager, Apache",
		"john.smith@army.mil",
	}, "\n")

	resp := uploadFile(t, srv, "directory.txt", content)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 202, got %d: %s", resp.StatusCode, body)
	}

	var accepted struct {
		JobID   string `json:"job_id"`
		PollURL string `json:"poll_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		t.Fatalf("decode accept response: %v", err)
	}
	if accepted.JobID == "" || accepted.PollURL == "" {
		t.Fatalf("incomplete accept response: %+v", accepted)
	}

	// Poll until the worker finishes.
	deadline := time.Now().Add(5 * time.Second)
	var status string
	for time.Now().Before(deadline) {
		st := authGet(t, srv, accepted.PollURL)
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(st.Body).Decode(&body); err != nil {
			t.Fatalf("decode status: %v", err)
		}
		st.Body.Close()
		status = body.Status
		if status == string(pipeline.StatusCompleted) || status == string(pipeline.StatusFailed) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if status != string(pipeline.StatusCompleted) {
		t.Fatalf("job did not complete, last status %q", status)
	}

	// Records as JSON.
	rr := authGet(t, srv, "/api/extract/"+accepted.JobID+"/records")
	defer rr.Body.Close()
	var recBody struct {
		Count   int `json:"count"`
		Records []struct {
			Name string `json:"name"`
		} `json:"records"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&recBody); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if recBody.Count != 1 || recBody.Records[0].Name != "John A. Smith" {
		t.Errorf("unexpected records response: %+v", recBody)
	}

	// Records as CSV.
	cr := authGet(t, srv, "/api/extract/"+accepted.JobID+"/records?format=csv")
	defer cr.Body.Close()
	csvBytes, _ := io.ReadAll(cr.Body)
	if !strings.HasPrefix(string(csvBytes), "service_agency,") {
		t.Errorf("csv export missing header: %q", string(csvBytes[:min(len(csvBytes), 60)]))
	}

	// Quality report.
	rp := authGet(t, srv, "/api/extract/"+accepted.JobID+"/report")
	defer rp.Body.Close()
	var report struct {
		TotalRecords int `json:"total_records"`
	}
	if err := json.NewDecoder(rp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.TotalRecords != 1 {
		t.Errorf("expected 1 record in report, got %d", report.TotalRecords)
	}
}

func TestExtractUnsupportedType(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := uploadFile(t, srv, "directory.exe", "binary")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unsupported type, got %d", resp.StatusCode)
	}
}

func TestResultsBeforeCompletion(t *testing.T) {
	srv, orch := newTestServer(t)

	// Register a job that never ran.
	job := &pipeline.Job{
		ID:        pipeline.NewJobID(),
		Status:    pipeline.StatusQueued,
		UpdatedAt: time.Now(),
	}
	// Bypass the queue: put directly so no worker touches it.
	if err := orch.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Filename is empty, so the worker fails it in the parsing phase. Either
	// way the job never reaches completed.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if job.Snapshot().Status == pipeline.StatusFailed {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	resp := authGet(t, srv, "/api/extract/"+job.ID+"/records")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for unfinished job, got %d", resp.StatusCode)
	}
}

func TestStatusNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := authGet(t, srv, "/api/extract/does-not-exist/status")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
