// Package main provides the entry point for the tripscout CLI.
//
// tripscout searches the web for travel suggestions for a trip, stores the
// trip with its suggestions in a local SQLite database, and prints every
// stored trip.
//
// Usage:
//
//	tripscout              # run the Madrid demo trip
//	tripscout trips        # list stored trips
//	tripscout init         # write a .tripscout config file
//
// See --help for all available options.
package main

// main is the entry point for tripscout.
func main() {
	Execute()
}
