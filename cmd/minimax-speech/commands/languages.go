package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language boost options",
	Long: `List supported language boost options.

These values can be passed to 'speech synthesize --language-boost' to
improve recognition of minor languages and dialects. Use "auto" to let
the model decide.

Examples:
  minimax-speech languages
  minimax-speech languages --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() || getOutputFile() != "" {
			result := map[string]any{
				"languages": minimaxspeech.Languages,
				"count":     len(minimaxspeech.Languages),
			}
			return outputResult(result, getOutputFile(), isJSONOutput())
		}

		for _, lang := range minimaxspeech.Languages {
			fmt.Println(lang)
		}
		return nil
	},
}
