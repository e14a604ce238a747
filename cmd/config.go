package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"webboot/core/server"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long:  `Loads .env and the environment exactly like start does and prints the result as JSON, with the store password masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(os.Stderr)
		if cfg.Store.Password != "" {
			cfg.Store.Password = "********"
		}

		out := struct {
			Config any    `json:"config"`
			Target string `json:"target"`
		}{
			Config: cfg,
			Target: server.NormalizePort(cfg.Server.Port).String(),
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
