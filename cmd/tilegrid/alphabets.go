package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/registry"
)

var alphabetsCmd = &cobra.Command{
	Use:   "alphabets",
	Short: "List tile alphabets",
	Long:  `Shows every tile alphabet that can be passed to --alphabet.`,
	Run:   runAlphabets,
}

func runAlphabets(cmd *cobra.Command, args []string) {
	list := registry.List()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range list {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, a := range list {
		fmt.Printf("  %-*s  %s\n", maxNameLen, a.Name, a.Description)
	}
}
