// Package controller owns a calculator session and persists its changes
// through a non-blocking Syncer.
package controller
