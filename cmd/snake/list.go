package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available renderers",
	Long:  `Shows a list of all renderers compiled into this binary.`,
	Run: func(cmd *cobra.Command, _ []string) {
		printBackends(cmd.OutOrStdout(), registry.List())
	},
}

func printBackends(w io.Writer, backends []registry.BackendInfo) {
	if len(backends) == 0 {
		fmt.Fprintln(w, "No renderers available.")
		return
	}

	fmt.Fprintln(w, "Available renderers:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake play --renderer <id>' to play.")
}
