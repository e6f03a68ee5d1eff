// Package config loads and validates markstorm configuration.
//
// Configuration is read from a TOML file and merged over built-in
// defaults. A missing file is not an error; the defaults apply. The
// package also provides a file watcher for live reload.
package config
