// Package config defines the application configuration structure and its
// loading logic. Configuration comes from environment variables with the
// BLOGLIST_ prefix, optionally layered over a config.yaml file, and is
// validated at startup so misconfiguration fails fast.
package config
