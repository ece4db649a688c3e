// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml (optional for CLI use) and
// validated using struct tags. Environment variables override file values,
// so a .env file or the process environment can tune a deployment without
// a config file.
package config
