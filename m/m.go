package main

import (
	"fmt"
	"os"
	"os/exec"
)

// m is a short alias wrapper for the raider command
// Usage: m <command> <args>
// Examples:
//   m a "Oasis NE" 12 -5   -> raider add "Oasis NE" 12 -5
//   m s                    -> raider status
//   m au                   -> raider auto
func main() {
	if len(os.Args) < 2 {
		// No args, just run raider
		runRaider([]string{})
		return
	}

	// Expand short aliases
	alias := os.Args[1]
	expandedCmd := expandAlias(alias)

	// Build the full raider command
	args := []string{expandedCmd}
	if len(os.Args) > 2 {
		args = append(args, os.Args[2:]...)
	}

	runRaider(args)
}

// expandAlias expands short aliases to full command names
func expandAlias(alias string) string {
	// Map of short aliases to full commands
	aliases := map[string]string{
		"a":  "add",
		"s":  "status",
		"st": "status",
		"l":  "list",
		"ls": "list",
		"r":  "raid",
		"au": "auto",
		"sc": "scan",
		"t":  "toggle",
		"tr": "troops",
		"hi": "history",
		"li": "lists",
	}

	if expanded, ok := aliases[alias]; ok {
		return expanded
	}

	// If no alias match, return as-is (might be a full command name)
	return alias
}

// runRaider executes the raider command with the given arguments
func runRaider(args []string) {
	cmd := exec.Command("raider", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error running raider: %v\n", err)
		os.Exit(1)
	}
}
