// Package config handles configuration loading and management for testy.
//
// It provides functionality for:
//   - Loading configuration from .testy.yaml, .testy.yml, testy.yaml or .testy.json
//   - Validating configuration against an embedded JSON schema
//   - Default configuration values
//   - Merging file configuration with command line overrides
package config
