package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-sales-report/internal/engine"
	"go-sales-report/internal/ingest"
	"go-sales-report/internal/store"
	"go-sales-report/pkg/utils"
)

var (
	logger  = zap.NewNop()
	outputs = utils.NewOutputManager("outputs")
)

// Init wires the handler package's logger and output manager.
func Init(l *zap.Logger, om *utils.OutputManager) {
	if l != nil {
		logger = l
	}
	if om != nil {
		outputs = om
	}
}

// AnalysisRequest is the payload for POST /api/v1/analyses.
type AnalysisRequest struct {
	Source string `json:"source"` // CSV file path or http(s) URL
}

// CreateAnalysis submits a new analysis run
// @Summary Create a new analysis
// @Description Submit a CSV source for analysis; the run executes asynchronously
// @Tags analyses
// @Accept json
// @Produce json
// @Param analysis body AnalysisRequest true "Analysis source"
// @Success 200 {object} map[string]interface{} "Analysis created"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analyses [post]
func CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		http.Error(w, "A CSV source is required", http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()

	if err := store.SaveRun(runID, req.Source); err != nil {
		logger.Error("failed to save run", zap.String("run_id", runID), zap.Error(err))
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	go runAnalysis(runID, req.Source)

	resp := map[string]interface{}{
		"message":   "Analysis created successfully!",
		"runID":     runID,
		"status":    "pending",
		"reportURL": outputs.ReportURL(runID),
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// runAnalysis executes one full pipeline run and persists the outcome.
// Only source I/O can fail a run; malformed rows are recorded as skips.
func runAnalysis(runID, source string) {
	logger.Info("starting analysis run", zap.String("run_id", runID), zap.String("source", source))
	if err := store.UpdateRunStatus(runID, "running"); err != nil {
		logger.Error("failed to update run status", zap.String("run_id", runID), zap.Error(err))
	}

	rows, err := ingest.ReadRows(source)
	if err != nil {
		logger.Error("analysis run failed", zap.String("run_id", runID), zap.Error(err))
		store.SaveRunError(runID, err)
		return
	}

	analysis := engine.Run(rows, time.Now())

	for _, skip := range analysis.Skipped {
		logger.Warn("row skipped", zap.String("run_id", runID), zap.String("reason", skip.Reason()))
	}
	if err := store.SaveSkips(runID, analysis.Skipped); err != nil {
		logger.Error("failed to save skip notices", zap.String("run_id", runID), zap.Error(err))
	}

	if err := store.SaveRunResult(runID, analysis.Result, analysis.Report, len(analysis.Skipped)); err != nil {
		logger.Error("failed to save run result", zap.String("run_id", runID), zap.Error(err))
		store.SaveRunError(runID, err)
		return
	}

	if path, err := outputs.WriteReport(runID, analysis.Report); err != nil {
		logger.Warn("failed to write report file", zap.String("run_id", runID), zap.Error(err))
	} else {
		size, _ := outputs.FileSize(path)
		logger.Info("analysis run completed",
			zap.String("run_id", runID),
			zap.Int("records", analysis.Result.TotalRecords),
			zap.Int("skipped", len(analysis.Skipped)),
			zap.String("report", path),
			zap.Int64("report_bytes", size),
		)
	}
}

// ListAnalyses retrieves all analysis runs
// @Summary List all analyses
// @Description Get a list of all analysis runs with their current status
// @Tags analyses
// @Produce json
// @Success 200 {array} map[string]interface{} "List of analyses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analyses [get]
func ListAnalyses(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch analyses", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetAnalysis retrieves a specific analysis run
// @Summary Get analysis
// @Description Retrieve status and totals of a specific analysis run
// @Tags analyses
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} map[string]interface{} "Analysis details"
// @Failure 400 {object} map[string]interface{} "Invalid analysis ID"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /analyses/{id} [get]
func GetAnalysis(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r.URL.Path, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetAnalysisReport retrieves the rendered report of an analysis run
// @Summary Get analysis report
// @Description Retrieve the rendered text report of a completed analysis run
// @Tags analyses
// @Produce plain
// @Param id path string true "Analysis ID"
// @Success 200 {string} string "Report text"
// @Failure 400 {object} map[string]interface{} "Invalid analysis ID"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /analyses/{id}/report [get]
func GetAnalysisReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r.URL.Path, "/report")
	if !ok {
		return
	}

	report, err := store.GetRunReport(runID)
	if err != nil {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}
	if report == "" {
		http.Error(w, "Report not ready", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(report))
}

// GetAnalysisSkips retrieves skip notices of an analysis run
// @Summary Get analysis skips
// @Description Retrieve the rows that were skipped during an analysis run and why
// @Tags analyses
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} map[string]interface{} "Skip notices"
// @Failure 400 {object} map[string]interface{} "Invalid analysis ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analyses/{id}/skips [get]
func GetAnalysisSkips(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r.URL.Path, "/skips")
	if !ok {
		return
	}

	skips, err := store.GetRunSkips(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve skips", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"run_id": runID,
		"skips":  skips,
		"count":  len(skips),
	})
}

// runIDFromPath extracts the run ID between the API prefix and an optional
// suffix, writing a 400 response when the path is malformed.
func runIDFromPath(w http.ResponseWriter, path, suffix string) (string, bool) {
	prefix := "/api/v1/analyses/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
