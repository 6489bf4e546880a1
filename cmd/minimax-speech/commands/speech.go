package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/haivivi/minimax-speech-go/pkg/cli"
	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

var speechCmd = &cobra.Command{
	Use:   "speech",
	Short: "Speech synthesis service",
	Long: `Speech synthesis (TTS) service.

Synthesizes speech from text, either one request at a time or as a
concurrent batch.

Example request file (speech.yaml):
  model: speech-02-hd
  text: Hello, this is a test message.
  voice_setting:
    voice_id: Wise_Woman
    speed: 1.0
    vol: 1.0
    emotion: happy
  audio_setting:
    format: mp3
    sample_rate: 32000
  output_format: hex
  language_boost: Chinese`,
}

var speechSynthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize speech from text",
	Long: `Synthesize speech from text.

Either provide a full request file with -f, or pass the text directly
with --text and adjust voice parameters via flags. The audio is saved
to the file given with -o.

With --format pcm the raw samples can be wrapped into a playable WAV
container using --wav.

Examples:
  minimax-speech speech synthesize --text "Hello world" -o hello.mp3
  minimax-speech speech synthesize --text "你好" --voice Deep_Voice_Man --emotion happy -o hi.mp3
  minimax-speech speech synthesize --text "Hello" --format pcm --wav -o hello.wav
  minimax-speech -c myctx speech synthesize -f speech.yaml -o output.mp3 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := getContext()
		if err != nil {
			return err
		}

		req, err := buildSynthesisRequest(cmd, ctx)
		if err != nil {
			return err
		}

		wrapWAV, err := cmd.Flags().GetBool("wav")
		if err != nil {
			return fmt.Errorf("failed to read 'wav' flag: %w", err)
		}
		if wrapWAV && audioFormat(req) != minimaxspeech.AudioFormatPCM {
			return fmt.Errorf("--wav requires --format pcm")
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Model: %s", req.Model)
		printVerbose("Text length: %d characters", len(req.Text))

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		resp, err := client.Speech.Synthesize(reqCtx, req)
		if err != nil {
			return fmt.Errorf("speech synthesis failed: %w", err)
		}

		audio, err := resp.AudioBytes()
		if err != nil {
			return fmt.Errorf("failed to decode audio: %w", err)
		}
		if wrapWAV {
			audio, err = minimaxspeech.WAVFromPCM(audio, sampleRate(req), channels(req), 16)
			if err != nil {
				return fmt.Errorf("failed to build WAV container: %w", err)
			}
		}

		// Save audio to file if specified
		outputPath := getOutputFile()
		if outputPath != "" && len(audio) > 0 {
			if err := outputBytes(audio, outputPath); err != nil {
				return fmt.Errorf("failed to write audio file: %w", err)
			}
			printVerbose("Audio saved to: %s (%s)", outputPath, formatBytes(len(audio)))
		}

		result := map[string]any{
			"audio_size":  len(audio),
			"trace_id":    resp.TraceID,
			"output_file": outputPath,
		}
		if resp.ExtraInfo != nil {
			result["duration"] = formatDuration(resp.ExtraInfo.AudioLength)
			result["sample_rate"] = resp.ExtraInfo.AudioSampleRate
			result["usage_characters"] = resp.ExtraInfo.UsageCharacters
		}

		return outputResult(result, "", isJSONOutput())
	},
}

var speechBatchCmd = &cobra.Command{
	Use:   "batch <lines-file>",
	Short: "Synthesize a batch of texts concurrently",
	Long: `Synthesize one audio file per non-empty line of the input file.

Requests run on a bounded worker pool. Results keep the input order:
output files are numbered by line. Failed lines are reported and do
not stop the rest of the batch.

Use --rate to throttle requests (requests per second) when the account
runs into API rate limits.

Examples:
  minimax-speech speech batch lines.txt --out-dir audio/
  minimax-speech speech batch lines.txt --workers 3 --rate 2 --voice Grinch
  minimax-speech speech batch lines.txt --format pcm --wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		linesPath := args[0]

		ctx, err := getContext()
		if err != nil {
			return err
		}

		texts, err := readLines(linesPath)
		if err != nil {
			return err
		}
		if len(texts) == 0 {
			return fmt.Errorf("no non-empty lines in %s", linesPath)
		}

		voiceID, _ := cmd.Flags().GetString("voice")
		if voiceID == "" {
			voiceID = defaultVoice(ctx)
		}
		model, _ := cmd.Flags().GetString("model")
		if model == "" {
			model = defaultModel(ctx)
		}
		format, _ := cmd.Flags().GetString("format")
		workers, _ := cmd.Flags().GetInt("workers")
		reqRate, _ := cmd.Flags().GetFloat64("rate")
		outDir, _ := cmd.Flags().GetString("out-dir")
		wrapWAV, _ := cmd.Flags().GetBool("wav")

		if wrapWAV && minimaxspeech.AudioFormat(format) != minimaxspeech.AudioFormatPCM {
			return fmt.Errorf("--wav requires --format pcm")
		}

		reqs := make([]*minimaxspeech.T2ARequest, len(texts))
		for i, text := range texts {
			req := minimaxspeech.NewT2ARequest(model, text, minimaxspeech.NewVoiceSetting(voiceID))
			req.AudioSetting.Format = minimaxspeech.AudioFormat(format)
			reqs[i] = req
		}

		var opts []minimaxspeech.BatchOption
		if reqRate > 0 {
			opts = append(opts, minimaxspeech.WithBatchRateLimit(rate.Limit(reqRate), 1))
		}

		printVerbose("Using context: %s", ctx.Name)
		printVerbose("Lines: %d, workers: %d", len(texts), workers)

		client, err := createClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		reqCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		start := time.Now()
		results := client.Speech.SynthesizeBatch(reqCtx, reqs, workers, opts...)

		ext := format
		if wrapWAV {
			ext = "wav"
		}

		var failed int
		for i, res := range results {
			if res.Err != nil {
				failed++
				printError("line %d: %v", i+1, res.Err)
				continue
			}
			audio, err := res.Response.AudioBytes()
			if err != nil {
				failed++
				printError("line %d: %v", i+1, err)
				continue
			}
			if wrapWAV {
				audio, err = minimaxspeech.WAVFromPCM(audio, sampleRate(reqs[i]), channels(reqs[i]), 16)
				if err != nil {
					failed++
					printError("line %d: %v", i+1, err)
					continue
				}
			}
			name := fmt.Sprintf("line_%03d.%s", i+1, ext)
			if err := outputBytes(audio, filepath.Join(outDir, name)); err != nil {
				failed++
				printError("line %d: %v", i+1, err)
			}
		}

		succeeded := len(results) - failed
		if succeeded > 0 {
			printSuccess("Synthesized %d/%d lines in %s", succeeded, len(results), time.Since(start).Round(time.Millisecond))
		}

		summary := map[string]any{
			"total":      len(results),
			"succeeded":  succeeded,
			"failed":     failed,
			"output_dir": outDir,
		}
		return outputResult(summary, getOutputFile(), isJSONOutput())
	},
}

// buildSynthesisRequest builds the request from -f or from the --text flags,
// filling context defaults for missing model and voice.
func buildSynthesisRequest(cmd *cobra.Command, ctx *cli.Context) (*minimaxspeech.T2ARequest, error) {
	if f := getInputFile(); f != "" {
		req := new(minimaxspeech.T2ARequest)
		if err := loadRequest(f, req); err != nil {
			return nil, err
		}
		if req.Model == "" {
			req.Model = defaultModel(ctx)
		}
		if req.VoiceSetting == nil {
			req.VoiceSetting = minimaxspeech.NewVoiceSetting(defaultVoice(ctx))
		} else if req.VoiceSetting.VoiceID == "" {
			req.VoiceSetting.VoiceID = defaultVoice(ctx)
		}
		if req.AudioSetting == nil {
			req.AudioSetting = minimaxspeech.NewAudioSetting()
		}
		if req.OutputFormat == "" {
			req.OutputFormat = minimaxspeech.OutputFormatHex
		}
		return req, nil
	}

	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return nil, fmt.Errorf("failed to read 'text' flag: %w", err)
	}
	if text == "" {
		return nil, fmt.Errorf("either --text or -f is required")
	}

	voiceID, _ := cmd.Flags().GetString("voice")
	if voiceID == "" {
		voiceID = defaultVoice(ctx)
	}
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = defaultModel(ctx)
	}

	voice := minimaxspeech.NewVoiceSetting(voiceID)
	voice.Speed, _ = cmd.Flags().GetFloat64("speed")
	voice.Vol, _ = cmd.Flags().GetFloat64("volume")
	voice.Pitch, _ = cmd.Flags().GetInt("pitch")
	voice.Emotion, _ = cmd.Flags().GetString("emotion")

	req := minimaxspeech.NewT2ARequest(model, text, voice)
	format, _ := cmd.Flags().GetString("format")
	req.AudioSetting.Format = minimaxspeech.AudioFormat(format)
	req.AudioSetting.SampleRate, _ = cmd.Flags().GetInt("sample-rate")
	req.AudioSetting.Bitrate, _ = cmd.Flags().GetInt("bitrate")
	req.LanguageBoost, _ = cmd.Flags().GetString("language-boost")

	return req, nil
}

// readLines returns the non-empty, trimmed lines of a text file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lines file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines file: %w", err)
	}
	return lines, nil
}

func audioFormat(req *minimaxspeech.T2ARequest) minimaxspeech.AudioFormat {
	if req.AudioSetting == nil || req.AudioSetting.Format == "" {
		return minimaxspeech.AudioFormatMP3
	}
	return req.AudioSetting.Format
}

func sampleRate(req *minimaxspeech.T2ARequest) int {
	if req.AudioSetting == nil || req.AudioSetting.SampleRate == 0 {
		return 32000
	}
	return req.AudioSetting.SampleRate
}

func channels(req *minimaxspeech.T2ARequest) int {
	if req.AudioSetting == nil || req.AudioSetting.Channel == 0 {
		return 1
	}
	return req.AudioSetting.Channel
}

func init() {
	speechSynthesizeCmd.Flags().String("text", "", "Text to synthesize (alternative to -f)")
	speechSynthesizeCmd.Flags().String("voice", "", "Voice ID (default: context default or Wise_Woman)")
	speechSynthesizeCmd.Flags().String("model", "", "Model (default: context default or speech-02-hd)")
	speechSynthesizeCmd.Flags().Float64("speed", 1.0, "Speech speed, 0.5 to 2.0")
	speechSynthesizeCmd.Flags().Float64("volume", 1.0, "Speech volume, 0 to 10")
	speechSynthesizeCmd.Flags().Int("pitch", 0, "Pitch shift, -12 to 12")
	speechSynthesizeCmd.Flags().String("emotion", "", "Voice emotion (happy, sad, angry, fearful, disgusted, surprised, neutral)")
	speechSynthesizeCmd.Flags().String("format", "mp3", "Audio format: mp3, pcm, flac")
	speechSynthesizeCmd.Flags().Int("sample-rate", 32000, "Sample rate in Hz")
	speechSynthesizeCmd.Flags().Int("bitrate", 128000, "Bitrate in bps")
	speechSynthesizeCmd.Flags().String("language-boost", "", "Language boost, see 'minimax-speech languages'")
	speechSynthesizeCmd.Flags().Bool("wav", false, "Wrap PCM output in a WAV container")

	speechBatchCmd.Flags().String("voice", "", "Voice ID for all lines")
	speechBatchCmd.Flags().String("model", "", "Model for all lines")
	speechBatchCmd.Flags().String("format", "mp3", "Audio format: mp3, pcm, flac")
	speechBatchCmd.Flags().Int("workers", minimaxspeech.DefaultBatchConcurrency, "Maximum concurrent requests")
	speechBatchCmd.Flags().Float64("rate", 0, "Request rate limit in requests per second (0 = unlimited)")
	speechBatchCmd.Flags().String("out-dir", "speech-batch", "Output directory for audio files")
	speechBatchCmd.Flags().Bool("wav", false, "Wrap PCM output in WAV containers")

	speechCmd.AddCommand(speechSynthesizeCmd)
	speechCmd.AddCommand(speechBatchCmd)
}
