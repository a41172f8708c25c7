package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/behavior"
	// Import scripts to register the behavior kinds
	_ "github.com/vovakirdan/tui-platformer/internal/scripts"
)

var behaviorsCmd = &cobra.Command{
	Use:   "behaviors",
	Short: "List the behavior kinds a level can attach",
	Long:  `Shows every behavior kind registered with the runtime, by the name a level YAML uses.`,
	Args:  cobra.NoArgs,
	Run:   runBehaviors,
}

func runBehaviors(_ *cobra.Command, _ []string) {
	kinds := behavior.Kinds()

	if len(kinds) == 0 {
		fmt.Println("No behaviors registered.")
		return
	}

	fmt.Println("Behavior kinds:")
	fmt.Println()

	// Calculate column widths
	maxLen := 4 // "Kind" header
	for _, k := range kinds {
		if len(k.Kind) > maxLen {
			maxLen = len(k.Kind)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxLen, "Kind", "Summary")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-------")

	for _, k := range kinds {
		fmt.Printf("  %-*s  %s\n", maxLen, k.Kind, k.Summary)
	}

	fmt.Println()
	fmt.Println("Attach one in a level with 'behaviors: [{kind: <kind>}]'.")
}
