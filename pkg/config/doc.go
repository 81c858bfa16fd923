// Package config handles configuration management for nsp.
// Configuration is layered: embedded defaults, then the user TOML file,
// then NSP_* environment variables.
package config
