// Package config loads, normalizes, and validates lyrickana configuration.
//
// Settings live in a TOML file (by default ~/.config/lyrickana/config.toml,
// falling back to ./lyrickana.toml). Missing files are not an error: the
// defaults below apply and command-line flags override individual values.
package config
