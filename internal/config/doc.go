// Package config loads runtime configuration from multiple sources (YAML or
// TOML files, a dotenv file, environment variables, CLI flags) with precedence:
// CLI flags > Environment variables > Config file > Defaults. It exposes the
// plate inventory, bar weight and log level to the rest of the application.
package config
