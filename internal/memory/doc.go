// Package memory implements the calculator's multi-slot memory.
//
// Slot 0 is the canonical memory value that plain MR, M+ and M- act on. MS
// pushes a new slot in front of the others, and the per-slot operations
// address any slot by index:
//
//	bank := memory.New(nil)
//	bank.Store(12)
//	bank.AddAt(0, 3) // slot 0 is now 15
package memory
