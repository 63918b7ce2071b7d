// Package config handles loading and parsing Chime configuration files.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/chime/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply environment variable overrides last
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://api.chime.dev/v1"
//	api_token = "..."
//	page_size = 50
//
// All fields are optional.
//
// # Environment Overrides
//
// CHIME_API_URL, CHIME_API_TOKEN and CHIME_PAGE_SIZE override the file
// values. A .env file in the working directory is loaded first, which
// keeps development tokens out of the config file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors
// (except os.ErrNotExist, which triggers defaults), TOML parsing errors,
// and malformed environment overrides. Missing config files are NOT an
// error, so Chime works out-of-the-box with just a token in the
// environment.
package config
