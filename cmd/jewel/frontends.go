package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jewel-legend/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available front-ends",
	Long:  `Shows the front-ends the console can run on.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Fprintln(out, "No front-ends available.")
		return
	}

	fmt.Fprintln(out, "Available front-ends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range infos {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range infos {
		marker := ""
		if f.ID == cfg.Display.Frontend {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, f.ID, f.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'jewel play --frontend <id>' to use one.")
}
