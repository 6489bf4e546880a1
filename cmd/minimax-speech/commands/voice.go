package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Voice management service",
	Long: `Voice management service.

List available voices, clone voices from uploaded audio, and delete
cloned voices.`,
}

var voiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available voices",
	Long: `List available voices.

Use --type flag to filter by voice type:
  - all: All voices (default)
  - system: System preset voices
  - voice_cloning: Custom cloned voices
  - voice_generation: Generated voices
  - music_generation: Music voices

Examples:
  minimax-speech voice list
  minimax-speech voice list --type system
  minimax-speech voice list --type voice_cloning --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		voiceType, err := cmd.Flags().GetString("type")
		if err != nil {
			return fmt.Errorf("failed to read 'type' flag: %w", err)
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Voice type: %s", voiceType)

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.Voice.List(reqCtx, minimaxspeech.VoiceType(voiceType))
		if err != nil {
			return fmt.Errorf("list voices failed: %w", err)
		}

		printVerbose("System: %d, cloned: %d, generated: %d, music: %d, slots: %d",
			len(resp.SystemVoices), len(resp.ClonedVoices), len(resp.GeneratedVoices),
			len(resp.MusicVoices), len(resp.VoiceSlots))

		return outputResult(resp, getOutputFile(), isJSONOutput())
	},
}

var voiceCloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone a voice from uploaded audio",
	Long: `Clone a voice from an audio file.

Either provide a full request file with -f, reference an already
uploaded file with --file-id, or pass a local audio file with --audio
to upload and clone in one step.

The voice ID must be at least 8 characters, start with a letter, and
contain both letters and digits. Pass --generate to have a valid ID
generated for you.

Example request file (voice-clone.yaml):
  file_id: 123456
  voice_id: MyVoice001
  text: Hello, this is a test for voice cloning.
  accuracy: 0.7

Examples:
  minimax-speech voice clone --audio sample.mp3 --voice-id MyVoice001
  minimax-speech voice clone --file-id 123456 --voice-id MyVoice001 --text "Preview text"
  minimax-speech voice clone --audio sample.mp3 --generate
  minimax-speech -c myctx voice clone -f voice-clone.yaml --json`,
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

		var req *minimaxspeech.VoiceCloneRequest
		if f := getInputFile(); f != "" {
			req = new(minimaxspeech.VoiceCloneRequest)
			if err := loadRequest(f, req); err != nil {
				return err
			}
		} else {
			req, err = buildCloneRequest(cmd, client)
			if err != nil {
				return err
			}
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Voice ID: %s", req.VoiceID)
		printVerbose("File ID: %d", req.FileID)

		reqCtx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		resp, err := client.Voice.Clone(reqCtx, req)
		if err != nil {
			return fmt.Errorf("voice clone failed: %w", err)
		}

		printSuccess("Voice cloned: %s", req.VoiceID)

		result := map[string]any{
			"voice_id":        req.VoiceID,
			"file_id":         req.FileID,
			"input_sensitive": resp.InputSensitive,
		}
		return outputResult(result, getOutputFile(), isJSONOutput())
	},
}

// buildCloneRequest assembles a clone request from flags, uploading the
// audio file first when --audio is given.
func buildCloneRequest(cmd *cobra.Command, client *minimaxspeech.Client) (*minimaxspeech.VoiceCloneRequest, error) {
	voiceID, _ := cmd.Flags().GetString("voice-id")
	generate, _ := cmd.Flags().GetBool("generate")
	if voiceID == "" && generate {
		voiceID = minimaxspeech.GenerateVoiceID("voice")
		printInfo("Generated voice ID: %s", voiceID)
	}
	if voiceID == "" {
		return nil, fmt.Errorf("--voice-id is required (or use --generate)")
	}

	fileID, _ := cmd.Flags().GetInt64("file-id")
	audioPath, _ := cmd.Flags().GetString("audio")
	if fileID == 0 && audioPath == "" {
		return nil, fmt.Errorf("either --file-id or --audio is required")
	}

	if audioPath != "" {
		upCtx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		info, err := client.File.Upload(upCtx, audioPath, minimaxspeech.FilePurposeVoiceClone)
		if err != nil {
			return nil, fmt.Errorf("upload failed: %w", err)
		}
		printVerbose("Uploaded %s as file %d", audioPath, info.FileID)
		fileID = info.FileID
	}

	req := minimaxspeech.NewVoiceCloneRequest(fileID, voiceID)
	req.Text, _ = cmd.Flags().GetString("text")
	req.Model, _ = cmd.Flags().GetString("model")
	req.NeedNoiseReduction, _ = cmd.Flags().GetBool("noise-reduction")
	req.NeedVolumeNormalization, _ = cmd.Flags().GetBool("volume-normalization")
	if cmd.Flags().Changed("accuracy") {
		accuracy, _ := cmd.Flags().GetFloat64("accuracy")
		req.Accuracy = &accuracy
	}

	return req, nil
}

var voiceDeleteCmd = &cobra.Command{
	Use:   "delete <voice_id>",
	Short: "Delete a custom voice",
	Long: `Delete a custom voice.

Use --type flag to specify the voice type:
  - voice_cloning: Cloned voices (default)
  - voice_generation: Generated voices

Examples:
  minimax-speech voice delete MyVoice001
  minimax-speech voice delete MyDesign01 --type voice_generation`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		voiceID := args[0]

		voiceType, _ := cmd.Flags().GetString("type")

		ctx, err := getContext()
		if err != nil {
			return err
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Deleting voice: %s (type: %s)", voiceID, voiceType)

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.Voice.Delete(reqCtx, voiceID, minimaxspeech.DeleteVoiceType(voiceType))
		if err != nil {
			return fmt.Errorf("delete voice failed: %w", err)
		}

		printSuccess("Voice deleted: %s", resp.VoiceID)
		return nil
	},
}

var voiceGenIDCmd = &cobra.Command{
	Use:   "gen-id",
	Short: "Generate a valid voice ID",
	Long: `Generate a voice ID that satisfies the cloning rules: at least
8 characters, starting with a letter, containing letters and digits.

Runs offline, no API call is made.

Examples:
  minimax-speech voice gen-id
  minimax-speech voice gen-id --prefix assistant`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, _ := cmd.Flags().GetString("prefix")
		fmt.Println(minimaxspeech.GenerateVoiceID(prefix))
		return nil
	},
}

func init() {
	voiceListCmd.Flags().String("type", "all", "Voice type filter: all, system, voice_cloning, voice_generation, music_generation")

	voiceCloneCmd.Flags().String("voice-id", "", "ID for the new voice")
	voiceCloneCmd.Flags().Bool("generate", false, "Generate a valid voice ID")
	voiceCloneCmd.Flags().Int64("file-id", 0, "ID of an already uploaded audio file")
	voiceCloneCmd.Flags().String("audio", "", "Local audio file to upload and clone from (mp3, m4a, wav)")
	voiceCloneCmd.Flags().String("text", "", "Preview text, up to 2000 characters")
	voiceCloneCmd.Flags().String("model", "", "Model for the preview audio")
	voiceCloneCmd.Flags().Float64("accuracy", minimaxspeech.DefaultCloneAccuracy, "Text validation accuracy, 0 to 1")
	voiceCloneCmd.Flags().Bool("noise-reduction", false, "Enable noise reduction")
	voiceCloneCmd.Flags().Bool("volume-normalization", false, "Enable volume normalization")

	voiceDeleteCmd.Flags().String("type", "voice_cloning", "Voice type: voice_cloning, voice_generation")

	voiceCmd.AddCommand(voiceListCmd)
	voiceCmd.AddCommand(voiceCloneCmd)
	voiceCmd.AddCommand(voiceDeleteCmd)
	voiceCmd.AddCommand(voiceGenIDCmd)
}
