package minimaxspeech

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"
)

func truncateStr(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// SpeechService provides text-to-speech operations.
type SpeechService struct {
	client *Client
}

// newSpeechService creates a new speech service.
func newSpeechService(client *Client) *SpeechService {
	return &SpeechService{client: client}
}

// SynthesizeOption adjusts a request built by SynthesizeSimple.
type SynthesizeOption func(*T2ARequest)

// WithModel selects the synthesis model.
func WithModel(model string) SynthesizeOption {
	return func(r *T2ARequest) { r.Model = model }
}

// WithSpeed sets the speech speed, range [0.5, 2.0].
func WithSpeed(speed float64) SynthesizeOption {
	return func(r *T2ARequest) { r.VoiceSetting.Speed = speed }
}

// WithVolume sets the speech volume, greater than 0 and at most 10.
func WithVolume(vol float64) SynthesizeOption {
	return func(r *T2ARequest) { r.VoiceSetting.Vol = vol }
}

// WithPitch sets the speech pitch, range [-12, 12].
func WithPitch(pitch int) SynthesizeOption {
	return func(r *T2ARequest) { r.VoiceSetting.Pitch = pitch }
}

// WithEmotion sets the speech emotion, one of the Emotion constants.
func WithEmotion(emotion string) SynthesizeOption {
	return func(r *T2ARequest) { r.VoiceSetting.Emotion = emotion }
}

// WithAudioFormat selects the output container (mp3, pcm or flac).
func WithAudioFormat(format AudioFormat) SynthesizeOption {
	return func(r *T2ARequest) { r.AudioSetting.Format = format }
}

// WithSampleRate sets the output sample rate in Hz.
func WithSampleRate(rate int) SynthesizeOption {
	return func(r *T2ARequest) { r.AudioSetting.SampleRate = rate }
}

// WithBitrate sets the output bitrate in bits per second.
func WithBitrate(bitrate int) SynthesizeOption {
	return func(r *T2ARequest) { r.AudioSetting.Bitrate = bitrate }
}

// WithLanguageBoost biases recognition toward one of the Language constants.
func WithLanguageBoost(language string) SynthesizeOption {
	return func(r *T2ARequest) { r.LanguageBoost = language }
}

// Synthesize converts text to speech.
//
// The request is validated before any network dispatch; a validation failure
// returns a *ValidationError and performs no HTTP call. The returned response
// carries hex-encoded audio, use T2AResponse.AudioBytes to decode it.
func (s *SpeechService) Synthesize(ctx context.Context, req *T2ARequest) (*T2AResponse, error) {
	if err := validateSynthesis(req); err != nil {
		return nil, err
	}

	slog.Debug("minimax: synthesize speech",
		"model", req.Model,
		"voice", req.VoiceSetting.VoiceID,
		"text_len", utf8.RuneCountInString(req.Text),
		"text", truncateStr(req.Text, 80))

	var resp T2AResponse
	u := s.client.http.endpointURL(endpointT2A, true)
	if err := s.client.http.postJSON(ctx, "synthesize", u, req, &resp); err != nil {
		return nil, err
	}

	slog.Debug("minimax: synthesize done",
		"trace_id", resp.TraceID,
		"audio_len", len(resp.Data.Audio),
		"status", resp.Data.Status)

	return &resp, nil
}

// SynthesizeSimple converts text to speech with defaults matching the
// service's documented ones: model speech-02-hd, speed 1.0, volume 1.0,
// pitch 0, mp3 at 32 kHz / 128 kbps. An empty voiceID selects Wise_Woman.
func (s *SpeechService) SynthesizeSimple(ctx context.Context, text, voiceID string, opts ...SynthesizeOption) (*T2AResponse, error) {
	if voiceID == "" {
		voiceID = VoiceWiseWoman
	}

	req := NewT2ARequest(ModelSpeech02HD, text, NewVoiceSetting(voiceID))
	for _, opt := range opts {
		opt(req)
	}

	return s.Synthesize(ctx, req)
}

// validateSynthesis applies the pre-flight rules the synthesis endpoint
// enforces, then the structural request validation. The endpoint accepts a
// narrower model set than voice cloning, see SynthesisModels.
func validateSynthesis(req *T2ARequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return &ValidationError{Field: "text", Message: "Text cannot be empty"}
	}
	if utf8.RuneCountInString(req.Text) > 5000 {
		return &ValidationError{Field: "text", Message: "Text too long, maximum 5000 characters allowed"}
	}
	if !slices.Contains(SynthesisModels, req.Model) {
		return &ValidationError{Field: "model", Message: fmt.Sprintf("Invalid model: %s", req.Model)}
	}
	return req.Validate()
}
