// Package config loads hcalc's application configuration.
//
// # Overview
//
// The configuration only decides where hcalc keeps its files and which
// colour palettes the light and dark themes use. User preferences that the
// calculator itself toggles (theme, digit grouping, pinned history) live in
// the state document managed by the store package, not here.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hcalc/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. HCALC_* environment variables override file values
//  5. Empty values fall back to defaults
//
// # Default Values
//
//   - Config file: ~/.config/hcalc/config.toml
//   - State file: ~/.local/state/hcalc/state.toml
//   - Log file: ~/.local/state/hcalc/hcalc.log
//   - Light palette: Dawnfox
//   - Dark palette: Nightfox
//
// # TOML Format
//
//	state_path = "~/.local/state/hcalc/state.toml"
//	log_path = "~/.local/state/hcalc/hcalc.log"
//	light_palette = "Dawnfox"
//	dark_palette = "Kanagawa"
//
// Every field is optional. Tilde expansion is performed on both paths.
//
// # Environment
//
//   - HCALC_STATE_PATH
//   - HCALC_LOG_PATH
//   - HCALC_LIGHT_PALETTE
//   - HCALC_DARK_PALETTE
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - Stat errors other than os.ErrNotExist
//   - TOML parsing errors
//
// Missing config files are NOT an error; hcalc works out of the box.
package config
