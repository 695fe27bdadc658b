// Package config loads the accordion list configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/accordion/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or invalid, use defaults
//
// # TOML Format
//
//	data_path = "~/groceries.yaml"    # catalog file; empty uses the builtin catalog
//	reload_seconds = 5                # reload data_path periodically; 0 disables
//	animation_ms = 200                # section collapse/expand transition
//	filter = 'department != "Meats"'  # expr expression over department and title
//	log_path = "~/.local/state/accordion/accordion.log"
//
// All fields are optional. Tilde expansion is performed for paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// The filter expression is not compiled here; the app package reports
// compile errors at startup.
package config
