// Package store persists hcalc's state document (window bounds,
// preferences and calculation history) as a single TOML file.
package store
