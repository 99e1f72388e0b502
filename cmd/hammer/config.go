package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createConfigCommand creates the config command.
func createConfigCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd, env)
			if err != nil {
				return err
			}

			data, err := cfg.YAML()
			if err != nil {
				return err //nolint:wrapcheck // already wrapped by config
			}

			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("failed to print config: %w", err)
			}
			return nil
		},
	}
}
