// Package config handles loading and validation of application
// configuration from files and environment variables.
package config
