package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createInitCommand creates the init command.
func createInitCommand(env *environment) *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and tracking files",
		Long: "Create ~/.local/share/hammer and the task and time tracking files " +
			"inside it. Existing files are never modified.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return fmt.Errorf("failed to get verbose flag: %w", err)
			}

			layout, err := initialize(cmd, env)
			if err != nil {
				return err
			}

			if !verbose {
				return nil
			}

			out := cmd.OutOrStdout()
			for _, path := range layout.CreatedPaths() {
				if _, err := fmt.Fprintf(out, "created %s\n", path); err != nil {
					return fmt.Errorf("failed to print created path: %w", err)
				}
			}
			return nil
		},
	}

	initCmd.Flags().BoolP("verbose", "v", false, "Print each created path")

	return initCmd
}
