package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go-sales-report/internal/model"
)

// ReadRows decodes a header-first CSV source into raw rows. The source is
// either a local file path or an http(s) URL.
func ReadRows(source string) ([]model.RawRow, error) {
	r, closeSource, err := open(source)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	return Decode(r)
}

func open(source string) (io.Reader, func() error, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to GET CSV: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, nil, fmt.Errorf("failed to GET CSV: unexpected status %s", resp.Status)
		}
		return resp.Body, resp.Body.Close, nil
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	return file, file.Close, nil
}

// Decode reads a CSV stream with a header row into raw rows. Header names
// are trimmed and stripped of stray quotes; short records are padded with
// empty values so every row carries the full column set.
func Decode(r io.Reader) ([]model.RawRow, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		header[i] = strings.ReplaceAll(h, `"`, "")
	}

	var rows []model.RawRow
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("CSV read error: %w", err)
		}

		row := make(model.RawRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
}
