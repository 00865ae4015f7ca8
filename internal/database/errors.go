package database

import "errors"

// Store errors. Callers classify failures with errors.Is.
var (
	// ErrStorageUnavailable is returned when the backing file cannot be
	// opened, created or initialized.
	ErrStorageUnavailable = errors.New("trip storage unavailable")

	// ErrWriteFailure is returned when an insert in AddTrip fails.
	// The transaction is rolled back by SQLite; nothing is compensated here.
	ErrWriteFailure = errors.New("trip write failed")

	// ErrLocked is returned by Open when another process holds the store.
	ErrLocked = errors.New("trip storage is locked by another process")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("trip storage is closed")
)
