package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sales-report/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { Close() })
}

func TestRunLifecycle(t *testing.T) {
	initTestDB(t)

	runID := uuid.New().String()
	require.NoError(t, SaveRun(runID, "sales.csv"))

	run, err := GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "pending", run["status"])
	assert.Equal(t, "sales.csv", run["source"])

	require.NoError(t, UpdateRunStatus(runID, "running"))

	res := &model.AnalysisResult{
		TotalRecords: 2,
		TotalSales:   75,
		ByRegion:     model.NewGroupTable(),
		ByProduct:    model.NewGroupTable(),
		ByMonth:      model.NewGroupTable(),
	}
	require.NoError(t, SaveRunResult(runID, res, "REPORT TEXT", 1))

	run, err = GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "completed", run["status"])
	assert.Equal(t, 2, run["totalRecords"])
	assert.Equal(t, 75.0, run["totalSales"])
	assert.Equal(t, 1, run["skipCount"])
	assert.NotContains(t, run, "report")

	report, err := GetRunReport(runID)
	require.NoError(t, err)
	assert.Equal(t, "REPORT TEXT", report)
}

func TestSaveRunError(t *testing.T) {
	initTestDB(t)

	runID := uuid.New().String()
	require.NoError(t, SaveRun(runID, "missing.csv"))
	require.NoError(t, SaveRunError(runID, errors.New("file not found")))

	run, err := GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, "failed", run["status"])
	assert.Equal(t, "file not found", run["error"])
}

func TestSaveAndGetSkips(t *testing.T) {
	initTestDB(t)

	runID := uuid.New().String()
	require.NoError(t, SaveRun(runID, "sales.csv"))

	skips := []model.SkipNotice{
		{
			Row:   model.RawRow{"Region": "East", "Units": "abc"},
			Field: "Units",
			Cause: errors.New("invalid syntax"),
		},
	}
	require.NoError(t, SaveSkips(runID, skips))

	got, err := GetRunSkips(runID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Units", got[0]["field"])
	assert.Equal(t, model.RawRow{"Region": "East", "Units": "abc"}, got[0]["row"])
	assert.Contains(t, got[0]["reason"], "invalid syntax")
}

func TestListRunsNewestFirst(t *testing.T) {
	initTestDB(t)

	first := uuid.New().String()
	second := uuid.New().String()
	require.NoError(t, SaveRun(first, "a.csv"))
	require.NoError(t, SaveRun(second, "b.csv"))

	runs, err := ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	ids := []string{runs[0]["id"].(string), runs[1]["id"].(string)}
	assert.Contains(t, ids, first)
	assert.Contains(t, ids, second)
}
