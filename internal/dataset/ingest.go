package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"spacex-dashboard/internal/config"
	"spacex-dashboard/internal/logging"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/store"
	"spacex-dashboard/pkg/utils"
)

// GenericRecord is one raw CSV row keyed by cleaned header name.
type GenericRecord map[string]interface{}

// textColumns are kept verbatim instead of being parsed as numbers.
var textColumns = map[string]bool{
	model.ColLaunchSite:             true,
	model.ColBoosterVersion:         true,
	model.ColBoosterVersionCategory: true,
}

// Load builds the dataset from the source named in conf.
func Load(ctx context.Context, conf *config.Conf) (*Dataset, error) {
	switch conf.DataSource {
	case config.SourceSQLite:
		return LoadSnapshot(conf.DBPath, conf.ImportID)
	default:
		return LoadCSV(ctx, conf.DataPath)
	}
}

// LoadSnapshot reads a previously imported table from the sqlite store.
// An empty importID selects the latest import.
func LoadSnapshot(dbPath, importID string) (*Dataset, error) {
	if err := store.InitDB(dbPath); err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	defer store.Close()

	if importID == "" {
		latest, err := store.LatestImportID()
		if err != nil {
			return nil, err
		}
		importID = latest
	}
	records, err := store.LoadLaunches(importID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", importID, err)
	}
	return New(dbPath+"#"+importID, records)
}

// LoadCSV reads the launch table from a local file or an http(s) URL.
func LoadCSV(ctx context.Context, pathOrURL string) (*Dataset, error) {
	logger := logging.New("dataset")
	logger.Info().Str("source", pathOrURL).Msg("➡️ Starting ingestion")

	var reader io.Reader
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		body, err := fetch(ctx, pathOrURL, FetchRetry)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		reader = body
	} else {
		file, err := os.Open(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	records, err := ReadCSV(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pathOrURL, err)
	}
	ds, err := New(pathOrURL, records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pathOrURL, err)
	}
	logger.Info().Str("source", pathOrURL).Int("records", ds.Len()).Msg("📄 CSV ingestion done")
	return ds, nil
}

// ReadCSV parses and validates every row of a launch table.
func ReadCSV(ctx context.Context, r io.Reader) ([]model.LaunchRecord, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	rawHeaders, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty CSV: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = utils.CleanHeader(h)
	}
	if err := checkHeader(headers, LaunchRules); err != nil {
		return nil, err
	}

	var records []model.LaunchRecord
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := csvReader.Read()
		if err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		line++

		recMap := make(GenericRecord, len(headers))
		for i, h := range headers {
			if textColumns[h] {
				recMap[h] = strings.TrimSpace(row[i])
			} else {
				recMap[h] = utils.ParseValue(row[i])
			}
		}
		if err := validateRecord(recMap, LaunchRules); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, toLaunch(recMap))
	}
}

// toLaunch converts a validated raw row into a typed record.
func toLaunch(rec GenericRecord) model.LaunchRecord {
	payload, _ := utils.Numeric(rec[model.ColPayloadMass])
	class, _ := utils.Numeric(rec[model.ColClass])
	out := model.LaunchRecord{
		LaunchSite:             fmt.Sprint(rec[model.ColLaunchSite]),
		PayloadMassKg:          payload,
		Outcome:                int(class),
		BoosterVersionCategory: fmt.Sprint(rec[model.ColBoosterVersionCategory]),
	}
	if fn, ok := utils.Numeric(rec[model.ColFlightNumber]); ok {
		out.FlightNumber = int(fn)
	}
	if bv, ok := rec[model.ColBoosterVersion]; ok && bv != "" {
		out.BoosterVersion = fmt.Sprint(bv)
	}
	return out
}
