package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hammer/internal/storage"
	"github.com/wizzomafizzo/hammer/internal/tz"
)

var (
	okMark      = color.New(color.FgGreen).SprintFunc()
	missingMark = color.New(color.FgRed).SprintFunc()
)

// createStatusCommand creates the status command.
func createStatusCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the data directory and tracking files",
		Long:  "Show the data directory and tracking files without creating anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := newManager(env).Inspect()
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), formatStatus(status))
			if err != nil {
				return fmt.Errorf("failed to print status: %w", err)
			}
			return nil
		},
	}
}

func formatStatus(status *storage.Status) string {
	var b strings.Builder

	dirState := okMark("ok")
	if !status.DirExists {
		dirState = missingMark("missing")
	}
	fmt.Fprintf(&b, "Data directory: %s [%s]\n", status.DataDir, dirState)

	for _, f := range status.Files {
		switch {
		case !f.Exists:
			fmt.Fprintf(&b, "  %-16s %s\n", f.Name, missingMark("missing"))
		case !f.IsRegular:
			fmt.Fprintf(&b, "  %-16s %s\n", f.Name, missingMark("not a file"))
		default:
			fmt.Fprintf(&b, "  %-16s %s %d bytes\n", f.Name, okMark("ok"), f.Size)
		}
	}

	fmt.Fprintf(&b, "Timezone: %s (%s)\n", tz.Name, tz.Now().Format("2006-01-02 15:04 -0700"))

	if !status.Ready() {
		b.WriteString("Run 'hammer init' to create missing files.\n")
	}

	return b.String()
}
