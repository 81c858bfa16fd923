// Package paths provides centralized path handling for nsp.
//
// nsp follows the XDG Base Directory specification:
//
//   - Data: $XDG_DATA_HOME/nsp (user templates live in templates/)
//   - Config: $XDG_CONFIG_HOME/nsp (config.toml)
//   - State: $XDG_STATE_HOME/nsp (nsp.log)
//
// # Environment Variables
//
//   - NSP_DATA_DIR: Override the data directory
//   - NSP_CONFIG_DIR: Override the config directory
//   - NSP_STATE_DIR: Override the state directory
package paths
