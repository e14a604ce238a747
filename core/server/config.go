package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Env is the deployment environment (development, production, ...).
	Env Environment `mapstructure:"env" env:"NODE_ENV" default:"development"`
	// Debug enables verbose logging and template reloading.
	Debug bool `mapstructure:"debug" env:"DEBUG" default:"false"`
	// Port is the raw listen value: a TCP port number or a pipe path.
	Port string `mapstructure:"port" env:"PORT" default:"5000"`
	// ViewsDir is the directory holding the HTML templates.
	ViewsDir string `mapstructure:"views_dir" default:"views"`
	// PublicDir is the directory served as static files.
	PublicDir string `mapstructure:"public_dir" default:"public"`
	// ShutdownTimeout bounds the connection drain on termination.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
	// MemoryInterval is the period of the memory usage report.
	MemoryInterval time.Duration `mapstructure:"memory_interval" default:"60s"`
}

// Environment names the deployment environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// IsProduction reports whether error details must be withheld from clients.
func (e Environment) IsProduction() bool {
	return e == EnvProduction
}
