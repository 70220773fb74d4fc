// Package config handles configuration loading and management for actionspec.
//
// It provides functionality for:
//   - Loading configuration from .actionspec.json or .actionspec.yaml files
//   - Default configuration values
//   - Merging explicit overrides on top of file settings
//   - Loading the route fixture file a configuration points at
package config
