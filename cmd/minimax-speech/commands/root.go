package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/minimax-speech-go/pkg/cli"
)

var (
	// Global flags
	cfgFile     string
	contextName string
	outputFile  string
	inputFile   string
	outputJSON  bool
	verbose     bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minimax-speech",
	Short: "MiniMax speech API CLI tool",
	Long: `minimax-speech - A command line interface for the MiniMax speech API.

This tool allows you to work with MiniMax text-to-speech and voice cloning:
  - Speech synthesis (single requests and concurrent batches)
  - Voice management (list, clone, delete, generate IDs)
  - File upload for voice cloning
  - Interactive voice manager

Configuration is stored in ~/.minimax-speech/ and supports multiple contexts,
similar to kubectl's context management. When no context is configured, the
MINIMAX_API_KEY and MINIMAX_GROUP_ID environment variables are used.

Examples:
  # Set up a new context
  minimax-speech config add-context myctx --api-key YOUR_KEY --group-id YOUR_GROUP

  # Synthesize speech
  minimax-speech speech synthesize --text "Hello world" -o hello.mp3

  # Clone a voice from an audio file
  minimax-speech voice clone --audio sample.mp3 --voice-id MyVoice001

  # Pipe voice list to another command
  minimax-speech voice list --json | jq '.voice_cloning[].voice_id'
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "", "", "config file (default is ~/.minimax-speech/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "context name to use")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "input request file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(speechCmd)
	rootCmd.AddCommand(voiceCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(managerCmd)
}

func initConfig() {
	var err error
	globalConfig, err = cli.LoadConfigWithPath(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

// getConfig returns the global configuration
func getConfig() *cli.Config {
	return globalConfig
}

// getContext returns the context configuration to use.
// When no context is configured, credentials fall back to the
// MINIMAX_API_KEY and MINIMAX_GROUP_ID environment variables.
func getContext() (*cli.Context, error) {
	cfg := getConfig()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	ctx, err := cfg.ResolveContext(contextName)
	if err != nil {
		if contextName == "" {
			if envCtx := envContext(); envCtx != nil {
				return envCtx, nil
			}
			return nil, fmt.Errorf("no context specified. Use -c flag, set a default with 'minimax-speech config use-context', or export MINIMAX_API_KEY and MINIMAX_GROUP_ID")
		}
		return nil, err
	}

	return ctx, nil
}

// envContext builds an unnamed context from environment variables,
// or returns nil when they are not set.
func envContext() *cli.Context {
	apiKey := os.Getenv("MINIMAX_API_KEY")
	groupID := os.Getenv("MINIMAX_GROUP_ID")
	if apiKey == "" || groupID == "" {
		return nil
	}
	return &cli.Context{
		Name:    "(env)",
		APIKey:  apiKey,
		GroupID: groupID,
	}
}

// getInputFile returns the input file path
func getInputFile() string {
	return inputFile
}

// getOutputFile returns the output file path
func getOutputFile() string {
	return outputFile
}

// isJSONOutput returns whether output should be JSON
func isJSONOutput() bool {
	return outputJSON
}

// outputResult outputs the result using cli package
func outputResult(result any, outputPath string, asJSON bool) error {
	format := cli.FormatYAML
	if asJSON {
		format = cli.FormatJSON
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   outputPath,
	})
}

// printVerbose prints verbose output if enabled
func printVerbose(format string, args ...any) {
	cli.PrintVerbose(verbose, format, args...)
}
