// Package database provides SQLite-based storage for trips and their
// suggestions.
//
// The TripDB owns two tables:
//   - trips: destination and date range of each stored trip
//   - suggestions: (title, link) rows referencing their trip
//
// Design decision: We use SQLite (via modernc.org/sqlite) because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Transactions give AddTrip its all-or-nothing behavior for free
//
// A TripDB is meant for one caller issuing sequential calls. Open takes an
// exclusive lock file (gofrs/flock) beside the database so a second process
// cannot open the same store concurrently.
package database
