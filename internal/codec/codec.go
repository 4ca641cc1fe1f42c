// Package codec round-trips the record collection to its two external
// representations: the JSON backup document (also the import format) and a
// CSV export.
package codec

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pavan-459/My-Job-Dasboard/internal/models"
)

// ErrBadFormat rejects import payloads whose top level is not an array.
var ErrBadFormat = errors.New("invalid JSON format: expected an array of records")

// JSONFilename and CSVFilename are the download names for exports.
const (
	JSONFilename = "job-tracker.json"
	CSVFilename  = "job-tracker.csv"
)

// csvHeader fixes the column order for CSV exports.
var csvHeader = []string{"id", "company", "role", "source", "status", "date", "notes"}

// ExportJSON renders the collection as the pretty-printed backup document.
// ImportJSON accepts the same shape back.
func ExportJSON(records []models.ApplicationRecord) ([]byte, error) {
	if records == nil {
		records = []models.ApplicationRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

// ExportCSV renders one row per record under a fixed header. Fields containing
// quotes, commas or newlines are quoted with embedded quotes doubled.
func ExportCSV(records []models.ApplicationRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.ID, rec.Company, rec.Role, rec.Source, string(rec.Status), rec.Date, rec.Notes}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// importedRecord tolerates sloppy backups: missing optional fields decode to
// empty strings instead of failing the whole import.
type importedRecord struct {
	ID      string        `json:"id"`
	Company string        `json:"company"`
	Role    string        `json:"role"`
	Source  string        `json:"source"`
	Status  models.Status `json:"status"`
	Date    string        `json:"date"`
	Notes   string        `json:"notes"`
}

// ImportJSON parses a backup document. Only the top-level shape is enforced:
// anything other than an array is rejected outright, while per-record oddities
// (unknown statuses, missing fields, entries that are not objects) are let
// through and surface as display artifacts, not hard failures.
func ImportJSON(data []byte) ([]models.ApplicationRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrBadFormat
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, ErrBadFormat
	}

	records := make([]models.ApplicationRecord, 0, len(raw))
	for _, item := range raw {
		var rec importedRecord
		// Entries that are not objects degrade to an empty record rather
		// than aborting the whole import.
		_ = json.Unmarshal(item, &rec)
		records = append(records, models.ApplicationRecord{
			ID:      rec.ID,
			Company: rec.Company,
			Role:    rec.Role,
			Source:  rec.Source,
			Status:  rec.Status,
			Date:    rec.Date,
			Notes:   rec.Notes,
		})
	}
	return records, nil
}
