// Package cli provides shared utilities for the minimax-speech command-line
// tool.
//
// This package includes:
//   - Configuration management (named contexts holding API credentials)
//   - Output formatting (JSON, YAML, raw)
//   - Request file loading (YAML/JSON)
//   - Terminal styles for interactive mode
//
// Configuration is stored in ~/.minimax-speech/, supporting multiple
// contexts similar to kubectl.
//
// Example usage:
//
//	// Load the CLI config
//	cfg, err := cli.LoadConfig()
//
//	// Resolve the context to use
//	ctx, err := cfg.ResolveContext(contextName)
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
