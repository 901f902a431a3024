package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"spacex-dashboard/internal/model"
)

// ExportResult represents the result of an export operation
type ExportResult struct {
	Type        string    `json:"type"` // "csv", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

var csvHeader = []string{
	model.ColFlightNumber,
	model.ColLaunchSite,
	model.ColClass,
	model.ColPayloadMass,
	model.ColBoosterVersion,
	model.ColBoosterVersionCategory,
}

// TypeForFile picks the export type from a file extension, CSV by default.
func TypeForFile(name string) string {
	if strings.ToLower(filepath.Ext(name)) == ".json" {
		return "json"
	}
	return "csv"
}

// Write encodes records in the given type ("csv" or "json").
func Write(w io.Writer, typ string, records []model.LaunchRecord) (int, error) {
	switch typ {
	case "csv":
		return WriteCSV(w, records)
	case "json":
		return WriteJSON(w, records)
	default:
		return 0, fmt.Errorf("unknown export type: %s", typ)
	}
}

// WriteCSV writes records under the launch table's own column names.
func WriteCSV(w io.Writer, records []model.LaunchRecord) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	recordCount := 0
	for _, rec := range records {
		flight := ""
		if rec.FlightNumber != 0 {
			flight = strconv.Itoa(rec.FlightNumber)
		}
		row := []string{
			flight,
			rec.LaunchSite,
			strconv.Itoa(rec.Outcome),
			strconv.FormatFloat(rec.PayloadMassKg, 'f', -1, 64),
			rec.BoosterVersion,
			rec.BoosterVersionCategory,
		}
		if err := writer.Write(row); err != nil {
			return recordCount, fmt.Errorf("failed to write CSV row: %w", err)
		}
		recordCount++
	}

	writer.Flush()
	return recordCount, writer.Error()
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []model.LaunchRecord) (int, error) {
	if records == nil {
		records = []model.LaunchRecord{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return len(records), nil
}

// ToFile exports records to path, choosing the format by extension.
func ToFile(path string, records []model.LaunchRecord) ExportResult {
	typ := TypeForFile(path)
	result := ExportResult{
		Type:       typ,
		Path:       path,
		ExportedAt: time.Now(),
	}

	file, err := os.Create(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create %s file: %v", typ, err)
		return result
	}
	n, err := Write(file, typ, records)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	result.RecordCount = n
	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
	}
	return result
}
