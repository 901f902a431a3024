package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spacex-dashboard/internal/model"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNoImports = errors.New("no imported launch tables")

var db *sql.DB

// Initialize DB connection
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	// Create tables if not exists
	importTable := `
	CREATE TABLE IF NOT EXISTS imports (
		id TEXT PRIMARY KEY,
		source TEXT,
		record_count INTEGER,
		created_at DATETIME
	);
	`
	launchTable := `
	CREATE TABLE IF NOT EXISTS launches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		import_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		flight_number INTEGER,
		launch_site TEXT NOT NULL,
		payload_mass_kg REAL NOT NULL,
		class INTEGER NOT NULL,
		booster_version TEXT,
		booster_version_category TEXT NOT NULL
	);
	`

	if _, err := db.Exec(importTable); err != nil {
		return err
	}
	if _, err := db.Exec(launchTable); err != nil {
		return err
	}

	return nil
}

// Close releases the DB connection.
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// Import describes one stored copy of the launch table.
type Import struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaveImport stores a launch table under a new import ID.
func SaveImport(source string, records []model.LaunchRecord) (string, error) {
	importID := uuid.New().String()
	now := time.Now().UTC()

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO imports (id, source, record_count, created_at) VALUES (?, ?, ?, ?)`,
		importID, source, len(records), now); err != nil {
		return "", fmt.Errorf("save import: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO launches
		(import_id, seq, flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.Exec(importID, i, rec.FlightNumber, rec.LaunchSite, rec.PayloadMassKg,
			rec.Outcome, rec.BoosterVersion, rec.BoosterVersionCategory); err != nil {
			return "", fmt.Errorf("save launch %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return importID, nil
}

// ListImports returns all imports, newest first.
func ListImports() ([]Import, error) {
	rows, err := db.Query(`SELECT id, source, record_count, created_at FROM imports ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		var imp Import
		if err := rows.Scan(&imp.ID, &imp.Source, &imp.RecordCount, &imp.CreatedAt); err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

// LatestImportID returns the ID of the most recent import.
func LatestImportID() (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM imports ORDER BY created_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoImports
	}
	return id, err
}

// LoadLaunches fetches the records of one import in their original order.
func LoadLaunches(importID string) ([]model.LaunchRecord, error) {
	var exists int
	if err := db.QueryRow(`SELECT COUNT(*) FROM imports WHERE id = ?`, importID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("import %s: %w", importID, ErrNoImports)
	}

	rows, err := db.Query(`SELECT flight_number, launch_site, payload_mass_kg, class, booster_version, booster_version_category
		FROM launches WHERE import_id = ? ORDER BY seq`, importID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.LaunchRecord
	for rows.Next() {
		var rec model.LaunchRecord
		var flightNumber sql.NullInt64
		var boosterVersion sql.NullString
		if err := rows.Scan(&flightNumber, &rec.LaunchSite, &rec.PayloadMassKg, &rec.Outcome,
			&boosterVersion, &rec.BoosterVersionCategory); err != nil {
			return nil, err
		}
		rec.FlightNumber = int(flightNumber.Int64)
		rec.BoosterVersion = boosterVersion.String
		records = append(records, rec)
	}
	return records, rows.Err()
}
