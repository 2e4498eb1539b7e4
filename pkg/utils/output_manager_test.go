package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReportAndFileSize(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	path, err := om.WriteReport("run-1", "REPORT TEXT\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(om.BaseOutputDir, "run-1", "report.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "REPORT TEXT\n", string(content))

	size, err := om.FileSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("REPORT TEXT\n")), size)
}

func TestFileSizeMissingFile(t *testing.T) {
	om := NewOutputManager(t.TempDir())

	_, err := om.FileSize(filepath.Join(om.BaseOutputDir, "nope.txt"))
	assert.Error(t, err)
}

func TestReportURL(t *testing.T) {
	om := NewOutputManager("outputs")
	assert.Equal(t, "/api/v1/analyses/run-1/report", om.ReportURL("run-1"))
}
