// Package main provides the minimax-speech CLI tool.
//
// Usage:
//
//	minimax-speech [flags] <service> <command> [args]
//
// Services:
//
//	speech    - Speech synthesis (single and batch)
//	voice     - Voice management (list, clone, delete)
//	file      - File upload for voice cloning
//	languages - Supported language boost values
//	config    - Configuration management
//	manager   - Interactive voice manager
//
// Configuration:
//
//	The CLI stores configuration in ~/.minimax-speech/
//	Use 'minimax-speech config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/minimax-speech-go/cmd/minimax-speech/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
