package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "File management service",
	Long: `File management service.

Upload audio files for voice cloning.

Supported file purposes:
  - voice_clone: Audio for voice cloning (default)
  - prompt_audio: Demo/prompt audio for voice cloning`,
}

var fileUploadCmd = &cobra.Command{
	Use:   "upload <file_path>",
	Short: "Upload a file",
	Long: `Upload an audio file for voice cloning.

Returns a file_id that can be used in a voice clone request.

Examples:
  minimax-speech file upload sample.mp3
  minimax-speech file upload prompt.wav --purpose prompt_audio --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		ctx, err := getContext()
		if err != nil {
			return err
		}

		purpose, err := cmd.Flags().GetString("purpose")
		if err != nil {
			return fmt.Errorf("failed to read 'purpose' flag: %w", err)
		}

		info, err := os.Stat(filePath)
		if err != nil {
			return fmt.Errorf("cannot stat file: %w", err)
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("File: %s (%s)", filePath, formatBytes(int(info.Size())))
		printVerbose("Purpose: %s", purpose)

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
		defer cancel()

		resp, err := client.File.Upload(reqCtx, filePath, minimaxspeech.FilePurpose(purpose))
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		printSuccess("File uploaded: %s -> %d", filepath.Base(filePath), resp.FileID)

		result := map[string]any{
			"file_id":  resp.FileID,
			"filename": resp.Filename,
			"bytes":    resp.Bytes,
			"purpose":  resp.Purpose,
		}
		return outputResult(result, getOutputFile(), isJSONOutput())
	},
}

func init() {
	fileUploadCmd.Flags().String("purpose", string(minimaxspeech.FilePurposeVoiceClone), "File purpose: voice_clone, prompt_audio")

	fileCmd.AddCommand(fileUploadCmd)
}
