package commands

import (
	"fmt"
	"time"

	"github.com/haivivi/minimax-speech-go/pkg/cli"
	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

// loadRequest loads a request from a YAML or JSON file
func loadRequest(path string, v any) error {
	return cli.LoadRequest(path, v)
}

// outputBytes outputs binary data to a file
func outputBytes(data []byte, outputPath string) error {
	return cli.OutputBytes(data, outputPath)
}

// printError prints an error message to stderr
func printError(format string, args ...any) {
	cli.PrintError(format, args...)
}

// printSuccess prints a success message
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// printInfo prints an info message
func printInfo(format string, args ...any) {
	cli.PrintInfo(format, args...)
}

// formatDuration formats milliseconds to human readable string
func formatDuration(ms int) string {
	return cli.FormatDuration(ms)
}

// formatBytes formats bytes to human readable string
func formatBytes(bytes int) string {
	return cli.FormatBytesInt(bytes)
}

// defaultModel returns the context's default model, or speech-02-hd
func defaultModel(ctx *cli.Context) string {
	if ctx.DefaultModel != "" {
		return ctx.DefaultModel
	}
	return minimaxspeech.ModelSpeech02HD
}

// defaultVoice returns the context's default voice, or Wise_Woman
func defaultVoice(ctx *cli.Context) string {
	if ctx.DefaultVoice != "" {
		return ctx.DefaultVoice
	}
	return minimaxspeech.VoiceWiseWoman
}

// createClient creates a MiniMax speech client from context configuration
func createClient(ctx *cli.Context) (*minimaxspeech.Client, error) {
	var opts []minimaxspeech.Option

	// Use custom base URL if configured
	if ctx.BaseURL != "" {
		opts = append(opts, minimaxspeech.WithBaseURL(ctx.BaseURL))
	}

	// Use custom timeout if configured
	if ctx.Timeout > 0 {
		opts = append(opts, minimaxspeech.WithTimeout(time.Duration(ctx.Timeout)*time.Second))
	}

	// Use custom retry count if configured
	if ctx.MaxRetries > 0 {
		opts = append(opts, minimaxspeech.WithRetry(ctx.MaxRetries))
	}

	client, err := minimaxspeech.NewClient(ctx.APIKey, ctx.GroupID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
