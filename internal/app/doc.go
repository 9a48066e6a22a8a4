// Package app is the composition root for hcalc.
//
// Run wires the pieces together in order:
//
//  1. Load config (file plus HCALC_* environment overrides)
//  2. Point the standard logger at the log file
//  3. Open the state store and start the persistence syncer
//  4. Build the controller and run the UI until the user quits
//  5. Queue the final terminal size and drain pending writes
//
// Persistence failures never stop the program. They are logged and the
// calculator keeps its in-memory state.
package app
