package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-sales-report/internal/model"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the schema.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT,
		status TEXT,
		total_records INTEGER DEFAULT 0,
		total_sales REAL DEFAULT 0,
		skip_count INTEGER DEFAULT 0,
		report TEXT,
		error_message TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	skipTable := `
	CREATE TABLE IF NOT EXISTS run_skips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		field TEXT,
		reason TEXT,
		row_json TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(runTable); err != nil {
		return err
	}
	if _, err := db.Exec(skipTable); err != nil {
		return err
	}

	return nil
}

// Close closes the underlying database handle.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveRun stores a new analysis run in the pending state.
func SaveRun(runID, source string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO runs (id, source, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, source, "pending", now, now)
	return err
}

// UpdateRunStatus updates a run's status.
func UpdateRunStatus(runID, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunError marks a run failed and records the cause.
func SaveRunError(runID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, error_message = ?, updated_at = ? WHERE id = ?`,
		"failed", runErr.Error(), now, runID)
	return err
}

// SaveRunResult marks a run completed and persists its totals and report.
func SaveRunResult(runID string, res *model.AnalysisResult, report string, skipCount int) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, total_records = ?, total_sales = ?, skip_count = ?, report = ?, updated_at = ? WHERE id = ?`,
		"completed", res.TotalRecords, res.TotalSales, skipCount, report, now, runID)
	return err
}

// SaveSkips records every skipped row of a run. The offending row is kept
// as JSON so callers can inspect exactly what was rejected.
func SaveSkips(runID string, skips []model.SkipNotice) error {
	now := time.Now().UTC()
	for _, skip := range skips {
		rowJSON, err := json.Marshal(skip.Row)
		if err != nil {
			return err
		}
		if _, err := db.Exec(`INSERT INTO run_skips (run_id, field, reason, row_json, created_at) VALUES (?, ?, ?, ?, ?)`,
			runID, skip.Field, skip.Reason(), rowJSON, now); err != nil {
			return err
		}
	}
	return nil
}

// ListRuns returns all runs with basic info, newest first.
func ListRuns() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, source, status, total_records, total_sales, skip_count, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]interface{}
	for rows.Next() {
		var id, source, status string
		var totalRecords, skipCount int
		var totalSales float64
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &source, &status, &totalRecords, &totalSales, &skipCount, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]interface{}{
			"id":           id,
			"source":       source,
			"status":       status,
			"totalRecords": totalRecords,
			"totalSales":   totalSales,
			"skipCount":    skipCount,
			"createdAt":    createdAt,
			"updatedAt":    updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches a single run's full state.
func GetRun(runID string) (map[string]interface{}, error) {
	var source, status string
	var totalRecords, skipCount int
	var totalSales float64
	var errorMessage sql.NullString
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT source, status, total_records, total_sales, skip_count, error_message, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&source, &status, &totalRecords, &totalSales, &skipCount, &errorMessage, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	run := map[string]interface{}{
		"id":           runID,
		"source":       source,
		"status":       status,
		"totalRecords": totalRecords,
		"totalSales":   totalSales,
		"skipCount":    skipCount,
		"createdAt":    createdAt,
		"updatedAt":    updatedAt,
	}
	if errorMessage.Valid {
		run["error"] = errorMessage.String
	}
	return run, nil
}

// GetRunReport fetches the rendered report text for a completed run.
func GetRunReport(runID string) (string, error) {
	var report sql.NullString
	err := db.QueryRow(`SELECT report FROM runs WHERE id = ?`, runID).Scan(&report)
	if err != nil {
		return "", err
	}
	return report.String, nil
}

// GetRunSkips returns the skip notices recorded for a run.
func GetRunSkips(runID string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT field, reason, row_json, created_at FROM run_skips WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skips []map[string]interface{}
	for rows.Next() {
		var field, reason, rowJSON string
		var createdAt time.Time
		if err := rows.Scan(&field, &reason, &rowJSON, &createdAt); err != nil {
			return nil, err
		}

		var row model.RawRow
		if err := json.Unmarshal([]byte(rowJSON), &row); err != nil {
			return nil, err
		}
		skips = append(skips, map[string]interface{}{
			"field":     field,
			"reason":    reason,
			"row":       row,
			"createdAt": createdAt,
		})
	}
	return skips, rows.Err()
}
