package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The schema is owned by the database; this service only connects to it.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	User     string `mapstructure:"user"      validate:"required"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"      validate:"required"`
	SSLMode  string `mapstructure:"ssl_mode"  validate:"required,oneof=disable require verify-ca verify-full"`
	PoolSize int    `mapstructure:"pool_size" validate:"required,gt=0"`
}
