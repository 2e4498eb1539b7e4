package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const reportFileName = "report.txt"

// OutputManager organizes per-run output files under a base directory.
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateRunOutputDir creates the directory for a run's outputs.
func (om *OutputManager) CreateRunOutputDir(runID string) (string, error) {
	runDir := filepath.Join(om.BaseOutputDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run output directory: %w", err)
	}

	return runDir, nil
}

// ReportPath returns the full path for a run's rendered report.
func (om *OutputManager) ReportPath(runID string) (string, error) {
	runDir, err := om.CreateRunOutputDir(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(runDir, reportFileName), nil
}

// WriteReport writes a run's rendered report into its output directory and
// returns the file path.
func (om *OutputManager) WriteReport(runID, report string) (string, error) {
	path, err := om.ReportPath(runID)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}

// ReportURL generates the download URL for a run's report.
func (om *OutputManager) ReportURL(runID string) string {
	return fmt.Sprintf("/api/v1/analyses/%s/report", runID)
}

// FileSize returns the size of a file in bytes.
func (om *OutputManager) FileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
