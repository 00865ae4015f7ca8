package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/tripscout/internal/model"
)

// DefaultFileName is the store file name.
const DefaultFileName = "travel.db"

// TripDB stores trips and their suggestions in a single SQLite file.
type TripDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// lock guards dbPath against other processes for the lifetime of the TripDB.
	lock *flock.Flock

	closed bool
}

// Options configures TripDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the store at dbPath and ensures the schema exists.
//
// Calling Open on a file that already holds the schema is safe; existing
// rows are kept. Every failure wraps ErrStorageUnavailable, and ErrLocked
// as well when another process has the store open.
func Open(dbPath string, opts Options) (*TripDB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrStorageUnavailable)
	}

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: database not found at %s (use CreateIfNotExists option to create)", ErrStorageUnavailable, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("%w: failed to check database path: %w", ErrStorageUnavailable, err)
		}
	} else if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("%w: failed to create database directory: %w", ErrStorageUnavailable, err)
		}
	}

	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to lock database: %w", ErrStorageUnavailable, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %w: %s", ErrStorageUnavailable, ErrLocked, dbPath)
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	// foreign_keys is set per connection through the DSN so it survives
	// connection recycling.
	mode := "rw"
	if opts.CreateIfNotExists {
		mode = "rwc"
	}
	dsn := dbPath + "?mode=" + mode + "&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = lock.Unlock() //nolint:errcheck // best effort cleanup
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrStorageUnavailable, err)
	}

	// One connection: the store serves a single sequential caller.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	tdb := &TripDB{
		db:     db,
		dbPath: dbPath,
		lock:   lock,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = tdb.Close()
			return nil, fmt.Errorf("%w: failed to enable WAL mode: %w", ErrStorageUnavailable, err)
		}
	}

	if err := tdb.createTables(); err != nil {
		_ = tdb.Close()
		return nil, fmt.Errorf("%w: failed to create tables: %w", ErrStorageUnavailable, err)
	}

	return tdb, nil
}

// Path returns the database file path.
func (tdb *TripDB) Path() string {
	return tdb.dbPath
}

// Close closes the database connection and releases the lock file.
// Operations on a closed TripDB return ErrClosed.
func (tdb *TripDB) Close() error {
	if tdb.closed {
		return ErrClosed
	}
	tdb.closed = true

	err := tdb.db.Close()
	if unlockErr := tdb.lock.Unlock(); unlockErr != nil && err == nil {
		err = unlockErr
	}
	return err
}

// createTables creates the database schema if it doesn't exist.
func (tdb *TripDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		destination TEXT,
		start_date TEXT,
		end_date TEXT
	);

	CREATE TABLE IF NOT EXISTS suggestions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		trip_id INTEGER,
		title TEXT,
		link TEXT,
		FOREIGN KEY(trip_id) REFERENCES trips(id)
	);

	CREATE INDEX IF NOT EXISTS idx_suggestions_trip ON suggestions(trip_id);
	`

	_, err := tdb.db.ExecContext(context.Background(), schema)
	return err
}

// AddTrip stores a trip and its suggestions and returns the trip identifier.
//
// The trip row is inserted first to obtain its identifier, then one
// suggestion row per input element in input order. All inserts run in one
// transaction, so a failure leaves no partial trip behind. Failures wrap
// ErrWriteFailure.
func (tdb *TripDB) AddTrip(ctx context.Context, destination, startDate, endDate string, suggestions []model.Suggestion) (int64, error) {
	if tdb.closed {
		return 0, ErrClosed
	}

	tx, err := tdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to begin transaction: %w", ErrWriteFailure, err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // no-op after commit
	}()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO trips (destination, start_date, end_date) VALUES (?, ?, ?)`,
		destination, startDate, endDate,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to insert trip: %w", ErrWriteFailure, err)
	}

	tripID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to read trip id: %w", ErrWriteFailure, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO suggestions (trip_id, title, link) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to prepare suggestion insert: %w", ErrWriteFailure, err)
	}
	defer stmt.Close()

	for i, s := range suggestions {
		if _, err := stmt.ExecContext(ctx, tripID, s.Title, s.Link); err != nil {
			return 0, fmt.Errorf("%w: failed to insert suggestion %d: %w", ErrWriteFailure, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: failed to commit trip: %w", ErrWriteFailure, err)
	}

	return tripID, nil
}

// FetchTrips returns every stored trip with its suggestions.
// Trips are ordered by identifier and each trip's suggestions by insertion.
// An empty store yields an empty, non-nil slice.
func (tdb *TripDB) FetchTrips(ctx context.Context) ([]model.Trip, error) {
	if tdb.closed {
		return nil, ErrClosed
	}

	// A single join keeps the one pooled connection free of nested queries.
	query := `
	SELECT t.id, t.destination, t.start_date, t.end_date, s.title, s.link
	FROM trips t
	LEFT JOIN suggestions s ON s.trip_id = t.id
	ORDER BY t.id, s.id
	`

	rows, err := tdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := make([]model.Trip, 0)
	for rows.Next() {
		var (
			id                      int64
			destination, start, end sql.NullString
			title, link             sql.NullString
		)
		if err := rows.Scan(&id, &destination, &start, &end, &title, &link); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}

		if len(trips) == 0 || trips[len(trips)-1].ID != id {
			trips = append(trips, model.Trip{
				ID:          id,
				Destination: destination.String,
				StartDate:   start.String,
				EndDate:     end.String,
				Suggestions: make([]model.Suggestion, 0),
			})
		}

		// A NULL title with a NULL link means the trip has no suggestions.
		if title.Valid || link.Valid {
			last := &trips[len(trips)-1]
			last.Suggestions = append(last.Suggestions, model.NewSuggestion(title.String, link.String))
		}
	}

	return trips, rows.Err()
}

// SuggestionsForTrip returns the stored suggestion rows of one trip in
// insertion order. An unknown trip yields an empty slice.
func (tdb *TripDB) SuggestionsForTrip(ctx context.Context, tripID int64) ([]model.SuggestionRecord, error) {
	if tdb.closed {
		return nil, ErrClosed
	}

	rows, err := tdb.db.QueryContext(ctx,
		`SELECT id, trip_id, title, link FROM suggestions WHERE trip_id = ? ORDER BY id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	records := make([]model.SuggestionRecord, 0)
	for rows.Next() {
		var rec model.SuggestionRecord
		var title, link sql.NullString
		if err := rows.Scan(&rec.ID, &rec.TripID, &title, &link); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		rec.Title = title.String
		rec.Link = link.String
		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetTrip returns one trip with its suggestions, or nil if it does not exist.
func (tdb *TripDB) GetTrip(ctx context.Context, tripID int64) (*model.Trip, error) {
	if tdb.closed {
		return nil, ErrClosed
	}

	var destination, start, end sql.NullString
	err := tdb.db.QueryRowContext(ctx,
		`SELECT destination, start_date, end_date FROM trips WHERE id = ?`,
		tripID,
	).Scan(&destination, &start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	records, err := tdb.SuggestionsForTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	trip := model.NewTrip(destination.String, start.String, end.String)
	trip.ID = tripID
	for _, rec := range records {
		trip.Suggestions = append(trip.Suggestions, rec.Suggestion())
	}
	return trip, nil
}
