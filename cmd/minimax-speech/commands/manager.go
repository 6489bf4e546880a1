package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/minimax-speech-go/pkg/cli"
	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

const (
	managerBannerWidth = 64

	// Voice listings are cached so that browsing does not hammer the API.
	voiceCacheTTL = 5 * time.Minute

	defaultPreviewText = "你好，这是一个测试音频。Hello, this is a test audio."
)

var managerCmd = &cobra.Command{
	Use:     "manager",
	Aliases: []string{"i", "tui"},
	Short:   "Interactive voice manager",
	Long: `Start the interactive voice manager.

A REPL for browsing, previewing, cloning and deleting voices without
building full command lines. Voice listings are cached for five minutes;
use 'refresh' to force a reload.

Examples:
  minimax-speech manager
  minimax-speech i
  minimax-speech -c production manager`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		paths, err := cli.NewPaths()
		if err != nil {
			return fmt.Errorf("failed to resolve data directories: %w", err)
		}

		m := &voiceManager{
			client:  client,
			cliCtx:  ctx,
			styles:  cli.NewStyles(cli.DefaultTheme),
			paths:   paths,
			scanner: bufio.NewScanner(os.Stdin),
		}
		return m.run()
	},
}

// voiceManager drives the interactive session. It keeps one cached
// voice listing per session, invalidated by TTL or by mutations.
type voiceManager struct {
	client  *minimaxspeech.Client
	cliCtx  *cli.Context
	styles  cli.Styles
	paths   *cli.Paths
	scanner *bufio.Scanner

	cache     *minimaxspeech.VoiceListResponse
	fetchedAt time.Time
}

func (m *voiceManager) run() error {
	fmt.Println(m.styles.Banner("MiniMax Voice Manager", m.cliCtx.Name, managerBannerWidth))
	fmt.Println(m.styles.Help.Render("Type 'help' for available commands, 'quit' to exit."))
	fmt.Println()

	for {
		fmt.Print(m.styles.Prompt(m.cliCtx.Name))

		if !m.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(m.scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		command := parts[0]

		switch command {
		case "help", "h", "?":
			m.showHelp()

		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil

		case "voices", "ls":
			m.handleVoices(parts[1:])

		case "refresh":
			m.cache = nil
			fmt.Println("Voice cache cleared.")

		case "preview", "play":
			m.handlePreview(parts[1:])

		case "clone":
			m.handleClone(parts[1:])

		case "delete", "rm":
			m.handleDelete(parts[1:])

		case "ctx", "context":
			m.showContext()

		case "clear", "cls":
			fmt.Print("\033[H\033[2J")

		default:
			fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", command)
		}

		fmt.Println()
	}

	return m.scanner.Err()
}

func (m *voiceManager) showHelp() {
	fmt.Println(`
Available commands:

  Voices:
    voices [type]          List voices (cloned by default; types:
                           cloned, system, generated, music, slots, all)
    refresh                Clear the voice cache and reload on next list
    preview <id> [text]    Synthesize a short sample with a voice and
                           save it under the audio directory
    clone <file> <id>      Upload an audio file and clone it as <id>
    delete <id>            Delete a cloned voice (asks for confirmation)

  General:
    ctx                    Show the active context
    help                   Show this help
    clear                  Clear the screen
    quit                   Exit the voice manager

Voice IDs must be at least 8 characters, start with a letter, and
contain only letters and digits.

For full CLI usage, run: minimax-speech --help`)
}

// voiceList returns the cached listing when fresh, otherwise fetches
// all categories in one call.
func (m *voiceManager) voiceList() (*minimaxspeech.VoiceListResponse, error) {
	if m.cache != nil && time.Since(m.fetchedAt) < voiceCacheTTL {
		return m.cache, nil
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := m.client.Voice.List(reqCtx, minimaxspeech.VoiceTypeAll)
	if err != nil {
		return nil, err
	}

	m.cache = resp
	m.fetchedAt = time.Now()
	return resp, nil
}

func (m *voiceManager) handleVoices(args []string) {
	kind := "cloned"
	if len(args) > 0 {
		kind = args[0]
	}

	resp, err := m.voiceList()
	if err != nil {
		printError("Failed to list voices: %v", err)
		return
	}

	switch kind {
	case "cloned":
		fmt.Println(m.styles.Rule("Cloned Voices", managerBannerWidth))
		if len(resp.ClonedVoices) == 0 {
			fmt.Println("  No cloned voices. Use 'clone <file> <id>' to create one.")
			return
		}
		for _, v := range resp.ClonedVoices {
			fmt.Printf("  %-28s %-12s %s\n", v.VoiceID, v.CreatedTime,
				cli.Truncate(strings.Join(v.Description, "; "), 40))
		}

	case "system":
		fmt.Println(m.styles.Rule("System Voices", managerBannerWidth))
		for _, v := range resp.SystemVoices {
			fmt.Printf("  %-28s %-20s %s\n", v.VoiceID,
				cli.Truncate(v.VoiceName, 20),
				cli.Truncate(strings.Join(v.Description, "; "), 32))
		}

	case "generated":
		fmt.Println(m.styles.Rule("Generated Voices", managerBannerWidth))
		if len(resp.GeneratedVoices) == 0 {
			fmt.Println("  No generated voices.")
			return
		}
		for _, v := range resp.GeneratedVoices {
			fmt.Printf("  %-28s %-12s %s\n", v.VoiceID, v.CreatedTime,
				cli.Truncate(strings.Join(v.Description, "; "), 40))
		}

	case "music":
		fmt.Println(m.styles.Rule("Music Voices", managerBannerWidth))
		if len(resp.MusicVoices) == 0 {
			fmt.Println("  No music voices.")
			return
		}
		for _, v := range resp.MusicVoices {
			fmt.Printf("  %-28s %-12s %s\n", v.VoiceID, v.CreatedTime,
				cli.Truncate(v.InstrumentalID, 40))
		}

	case "slots":
		fmt.Println(m.styles.Rule("Voice Slots", managerBannerWidth))
		if len(resp.VoiceSlots) == 0 {
			fmt.Println("  No voice slots.")
			return
		}
		for _, v := range resp.VoiceSlots {
			fmt.Printf("  %-28s %-20s %s\n", v.VoiceID,
				cli.Truncate(v.VoiceName, 20),
				cli.Truncate(strings.Join(v.Description, "; "), 32))
		}

	case "all":
		fmt.Println(m.styles.Rule("Voice Summary", managerBannerWidth))
		fmt.Printf("  %-20s %d\n", "System voices:", len(resp.SystemVoices))
		fmt.Printf("  %-20s %d\n", "Cloned voices:", len(resp.ClonedVoices))
		fmt.Printf("  %-20s %d\n", "Generated voices:", len(resp.GeneratedVoices))
		fmt.Printf("  %-20s %d\n", "Music voices:", len(resp.MusicVoices))
		fmt.Printf("  %-20s %d\n", "Voice slots:", len(resp.VoiceSlots))
		fmt.Println("\n  Use 'voices <type>' to list a category.")

	default:
		fmt.Printf("Unknown voice type: %s (want cloned, system, generated, music, slots or all)\n", kind)
	}
}

func (m *voiceManager) handlePreview(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: preview <voice-id> [text]")
		return
	}

	voiceID := args[0]
	text := defaultPreviewText
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	}

	fmt.Printf("Synthesizing preview with voice %s...\n", voiceID)

	reqCtx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	resp, err := m.client.Speech.SynthesizeSimple(reqCtx, text, voiceID,
		minimaxspeech.WithModel(defaultModel(m.cliCtx)))
	if err != nil {
		printError("Synthesis failed: %v", err)
		return
	}

	audio, err := resp.AudioBytes()
	if err != nil {
		printError("Failed to decode audio: %v", err)
		return
	}

	if err := m.paths.EnsureAudioDir(); err != nil {
		printError("Failed to create audio directory: %v", err)
		return
	}

	outPath := m.paths.AudioPath("preview_" + voiceID + ".mp3")
	if err := os.WriteFile(outPath, audio, 0644); err != nil {
		printError("Failed to save audio: %v", err)
		return
	}

	printSuccess("Preview saved: %s (%s)", outPath, formatBytes(len(audio)))
}

func (m *voiceManager) handleClone(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: clone <audio-file> <voice-id>")
		return
	}

	audioPath, voiceID := args[0], args[1]

	reqCtx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
	defer cancel()

	fmt.Printf("Uploading %s...\n", audioPath)
	info, err := m.client.File.Upload(reqCtx, audioPath, minimaxspeech.FilePurposeVoiceClone)
	if err != nil {
		printError("Upload failed: %v", err)
		return
	}

	fmt.Printf("Cloning voice %s from file %d...\n", voiceID, info.FileID)
	resp, err := m.client.Voice.CloneSimple(reqCtx, info.FileID, voiceID)
	if err != nil {
		printError("Clone failed: %v", err)
		return
	}

	m.cache = nil
	if resp.InputSensitive {
		cli.PrintWarning("Input audio was flagged by the content filter")
	}
	printSuccess("Voice cloned: %s (preview it with 'preview %s')", voiceID, voiceID)
}

func (m *voiceManager) handleDelete(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: delete <voice-id>")
		return
	}
	voiceID := args[0]

	fmt.Printf("Delete voice %s? This cannot be undone. [y/N] ", voiceID)
	if !m.scanner.Scan() {
		return
	}
	answer := strings.ToLower(strings.TrimSpace(m.scanner.Text()))
	if answer != "y" && answer != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := m.client.Voice.Delete(reqCtx, voiceID, minimaxspeech.DeleteVoiceCloning)
	if err != nil {
		printError("Delete failed: %v", err)
		return
	}

	m.cache = nil
	printSuccess("Voice deleted: %s", resp.VoiceID)
}

func (m *voiceManager) showContext() {
	fmt.Printf("Current context: %s\n", m.cliCtx.Name)
	fmt.Printf("  API Key:  %s\n", cli.MaskAPIKey(m.cliCtx.APIKey))
	fmt.Printf("  Group ID: %s\n", m.cliCtx.GroupID)
	if m.cliCtx.BaseURL != "" {
		fmt.Printf("  Base URL: %s\n", m.cliCtx.BaseURL)
	}
	if m.cliCtx.DefaultModel != "" {
		fmt.Printf("  Default Model: %s\n", m.cliCtx.DefaultModel)
	}
	if m.cliCtx.DefaultVoice != "" {
		fmt.Printf("  Default Voice: %s\n", m.cliCtx.DefaultVoice)
	}
}
