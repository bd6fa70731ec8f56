// SPDX-License-Identifier: MIT

// Package ingest reads task and route rows from CSV, YAML or JSON files.
//
// CSV files need a header row; columns are matched by name, ignoring case and
// surrounding whitespace, so extra columns and any column order are accepted.
// YAML and JSON files hold a list of objects keyed by the same column names.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/buildtrack/route"
	"github.com/katalvlaran/buildtrack/scheduler"
)

var (
	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("ingest: required column missing")

	// ErrUnknownFormat indicates a file extension no reader handles.
	ErrUnknownFormat = errors.New("ingest: unknown file format")
)

// Format selects the decoder.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// ReadTasks decodes task rows. Columns: Task (required), DependsOn (optional).
// CSV rows carry their data record number in TaskRow.Row.
func ReadTasks(r io.Reader, f Format) ([]scheduler.TaskRow, error) {
	var rows []scheduler.TaskRow
	emit := func(rec map[string]string, row int) {
		rows = append(rows, scheduler.TaskRow{Task: rec["task"], DependsOn: blankNaN(rec["dependson"]), Row: row})
	}
	if err := read(r, f, []string{"Task"}, []string{"DependsOn"}, emit); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReadRoutes decodes route rows. Columns: From, To, Distance (all required
// in CSV). Distances stay textual; route.ParseRows validates them.
// CSV rows carry their data record number in RawRow.Row.
func ReadRoutes(r io.Reader, f Format) ([]route.RawRow, error) {
	var rows []route.RawRow
	emit := func(rec map[string]string, row int) {
		rows = append(rows, route.RawRow{From: rec["from"], To: rec["to"], Distance: rec["distance"], Row: row})
	}
	if err := read(r, f, []string{"From", "To", "Distance"}, nil, emit); err != nil {
		return nil, err
	}

	return rows, nil
}

// read dispatches on f and calls emit once per row with lower-cased column
// names as keys. row is the CSV data record number, or 0 for YAML and JSON
// where list position already identifies the row.
func read(r io.Reader, f Format, required, optional []string, emit func(rec map[string]string, row int)) error {
	switch f {
	case FormatCSV:
		return readCSV(r, required, optional, emit)
	case FormatYAML:
		var doc []map[string]yaml.Node
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("ingest: decoding yaml: %w", err)
		}
		for _, m := range doc {
			rec := make(map[string]string, len(m))
			for k, n := range m {
				rec[strings.ToLower(strings.TrimSpace(k))] = yamlText(n)
			}
			emit(rec, 0)
		}

		return nil
	case FormatJSON:
		var doc []map[string]json.RawMessage
		if err := json.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("ingest: decoding json: %w", err)
		}
		for _, m := range doc {
			rec := make(map[string]string, len(m))
			for k, raw := range m {
				rec[strings.ToLower(strings.TrimSpace(k))] = jsonText(raw)
			}
			emit(rec, 0)
		}

		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// readCSV locates the named columns in the header and calls emit once per
// non-blank data record. Blank records still advance the record number.
func readCSV(r io.Reader, required, optional []string, emit func(map[string]string, int)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty file, expected header with %s", ErrMissingColumn, strings.Join(required, ", "))
	}
	if err != nil {
		return fmt.Errorf("ingest: reading csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	cols := make(map[string]int, len(required)+len(optional))
	for _, name := range required {
		key := strings.ToLower(name)
		i, ok := index[key]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		cols[key] = i
	}
	for _, name := range optional {
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			cols[key] = i
		}
	}

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ingest: reading csv: %w", err)
		}
		if blankRecord(rec) {
			continue
		}
		out := make(map[string]string, len(cols))
		for key, i := range cols {
			if i < len(rec) {
				out[key] = strings.TrimSpace(rec[i])
			}
		}
		emit(out, row)
	}
}

// jsonText renders a JSON scalar as text: strings unquoted, numbers verbatim.
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}

	return string(raw)
}

// yamlText renders a YAML scalar as text; null and missing nodes are empty.
func yamlText(n yaml.Node) string {
	if n.Kind == 0 || n.Tag == "!!null" {
		return ""
	}

	return n.Value
}

// blankNaN maps spreadsheet "missing value" markers to the empty string.
func blankNaN(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nan", "null", "none", "n/a", "-":
		return ""
	}

	return s
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
