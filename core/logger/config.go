package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum console level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the console encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
	// Dir is the directory for the log files; it is created if absent.
	Dir string `mapstructure:"dir" default:"logs"`
	// MaxSizeMB is the size at which a log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"10"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `mapstructure:"max_backups" default:"5"`
	// MaxAgeDays is the age after which rotated files are removed.
	MaxAgeDays int `mapstructure:"max_age_days" default:"30"`
}

// Log file names inside Config.Dir.
const (
	InfoFile       = "logger-info.log"
	ErrorFile      = "logger-error.log"
	ExceptionsFile = "logger-exceptions.log"
	AccessFile     = "http-error.log"
)
