package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"webboot/core/config"
)

// loadConfig loads the configuration or terminates the process.
// A missing .env file is reported before anything else is initialized.
func loadConfig(stderr io.Writer) *config.Config {
	cfg, err := config.LoadConfig(configDir)
	if errors.Is(err, config.ErrEnvFileMissing) {
		fmt.Fprintln(stderr, "Unable to read the environment file at "+config.EnvFile)
		fmt.Fprintln(stderr, "Make sure "+config.EnvFile+" is on the root folder.")
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
