package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the simulation can run on.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()
	out := cmd.OutOrStdout()

	if len(frontends) == 0 {
		fmt.Fprintln(out, "No frontends available.")
		return
	}

	fmt.Fprintln(out, "Available frontends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range frontends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arena run --frontend <id>' to use one.")
}
