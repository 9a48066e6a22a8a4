// Package history keeps the bounded, most-recent-first calculation log.
//
// Recording an entry past Limit drops the oldest one. Clamp applies the same
// bound to entries loaded from disk.
package history
