package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"webboot/core/logger"
	"webboot/core/server"
	"webboot/core/store"
	"webboot/core/utils"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFile is the environment definition file that must exist at startup.
const EnvFile = ".env"

// ErrEnvFileMissing is returned when the environment file cannot be read.
var ErrEnvFileMissing = errors.New("unable to read the environment file")

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Store holds configuration for the Redis datastore.
	Store store.Config `mapstructure:"store"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from the .env file in path and the environment.
// Variables already present in the process environment win over the file.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, EnvFile)

	if _, err := os.Stat(envPath); err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrEnvFileMissing, envPath, err)
	}
	if err := godotenv.Load(envPath); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", envPath, err)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values and bind each key
	// to exactly one environment variable
	bindValues(v, Config{}, "")

	var config Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		truthyHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&config, hook); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks ranges that the decoder cannot enforce.
func (c *Config) Validate() error {
	if c.Store.Port < 0 || c.Store.Port > server.MaxPort {
		return fmt.Errorf("store port %d out of range 0-%d", c.Store.Port, server.MaxPort)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Server.ShutdownTimeout < 0 || c.Server.MemoryInterval < 0 || c.Store.Timeout < 0 {
		return errors.New("durations must not be negative")
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags. Every key is bound to one
// variable: the 'env' tag when present, otherwise the key upper-cased with
// dots replaced by underscores (log.level -> LOG_LEVEL).
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		env := field.Tag.Get("env")
		if env == "" {
			env = envKeyReplacer.Replace(strings.ToUpper(key))
		}
		_ = v.BindEnv(key, env)

		// Always set default (even if empty) so the key is part of Unmarshal
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

// truthyHook decodes string flags leniently, so DEBUG=app:* enables debug.
func truthyHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	return utils.Truthy(data.(string)), nil
}
