package minimaxspeech

import (
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"
)

// ================== Common Types ==================

// OutputFormat specifies how synthesized audio is returned.
type OutputFormat string

const (
	OutputFormatHex OutputFormat = "hex"
	OutputFormatURL OutputFormat = "url"
)

// AudioFormat specifies the audio encoding format.
type AudioFormat string

const (
	AudioFormatMP3  AudioFormat = "mp3"
	AudioFormatPCM  AudioFormat = "pcm"
	AudioFormatFLAC AudioFormat = "flac"
)

// VoiceType filters the voice listing.
type VoiceType string

const (
	VoiceTypeAll        VoiceType = "all"
	VoiceTypeSystem     VoiceType = "system"
	VoiceTypeCloning    VoiceType = "voice_cloning"
	VoiceTypeGeneration VoiceType = "voice_generation"
	VoiceTypeMusic      VoiceType = "music_generation"
)

// DeleteVoiceType selects which voice category a deletion targets.
type DeleteVoiceType string

const (
	DeleteVoiceCloning    DeleteVoiceType = "voice_cloning"
	DeleteVoiceGeneration DeleteVoiceType = "voice_generation"
)

// FilePurpose specifies the intended use of an uploaded file.
type FilePurpose string

const (
	// FilePurposeVoiceClone is for voice cloning source audio.
	FilePurposeVoiceClone FilePurpose = "voice_clone"

	// FilePurposePromptAudio is for voice cloning example/prompt audio.
	FilePurposePromptAudio FilePurpose = "prompt_audio"
)

// BaseResp is the status envelope attached to every API response.
type BaseResp struct {
	// StatusCode is the business status code (0 or 200-series on success).
	StatusCode int64 `json:"status_code"`

	// StatusMsg is the status message; "success" on success.
	StatusMsg string `json:"status_msg"`
}

// Success reports whether the response succeeded. The service signals
// success through the message, not the numeric code.
func (b *BaseResp) Success() bool {
	return b != nil && b.StatusMsg == "success"
}

// ================== Speech Types ==================

// VoiceSetting configures the synthesis voice.
type VoiceSetting struct {
	// VoiceID is the voice identifier (system voice or cloned voice).
	VoiceID string `json:"voice_id,omitempty" yaml:"voice_id,omitempty"`

	// Speed is the speech speed, 0.5-2.0, default 1.0.
	Speed float64 `json:"speed" yaml:"speed"`

	// Vol is the volume, above 0 up to 10, default 1.0.
	Vol float64 `json:"vol" yaml:"vol"`

	// Pitch is the pitch shift in semitones, -12 to 12, default 0.
	Pitch int `json:"pitch" yaml:"pitch"`

	// Emotion is one of happy, sad, angry, fearful, disgusted, surprised, neutral.
	Emotion string `json:"emotion,omitempty" yaml:"emotion,omitempty"`

	// EnglishNormalization enables English text normalization.
	EnglishNormalization bool `json:"english_normalization" yaml:"english_normalization"`
}

// NewVoiceSetting returns a voice setting with default speed, volume and pitch.
func NewVoiceSetting(voiceID string) *VoiceSetting {
	return &VoiceSetting{
		VoiceID: voiceID,
		Speed:   1.0,
		Vol:     1.0,
		Pitch:   0,
	}
}

// Validate checks the voice setting ranges.
func (v *VoiceSetting) Validate() error {
	if v.Speed < 0.5 || v.Speed > 2.0 {
		return &ValidationError{Field: "speed", Message: fmt.Sprintf("speed must be in range [0.5, 2.0], got %v", v.Speed)}
	}
	if v.Vol <= 0 || v.Vol > 10 {
		return &ValidationError{Field: "vol", Message: fmt.Sprintf("vol must be greater than 0 and at most 10, got %v", v.Vol)}
	}
	if v.Pitch < -12 || v.Pitch > 12 {
		return &ValidationError{Field: "pitch", Message: fmt.Sprintf("pitch must be in range [-12, 12], got %d", v.Pitch)}
	}
	if v.Emotion != "" && !slices.Contains(validEmotions, v.Emotion) {
		return &ValidationError{Field: "emotion", Message: fmt.Sprintf("invalid emotion: %s", v.Emotion)}
	}
	return nil
}

// AudioSetting configures the output audio. Zero fields are omitted from the
// request and the service applies its own defaults.
type AudioSetting struct {
	// SampleRate is one of 8000, 16000, 22050, 24000, 32000, 44100.
	SampleRate int `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`

	// Bitrate is one of 32000, 64000, 128000, 256000.
	Bitrate int `json:"bitrate,omitempty" yaml:"bitrate,omitempty"`

	// Format is one of mp3, pcm, flac.
	Format AudioFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// Channel is 1 (mono) or 2 (stereo).
	Channel int `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// NewAudioSetting returns an audio setting with the service defaults:
// 32000 Hz, 128000 bps, mp3, mono.
func NewAudioSetting() *AudioSetting {
	return &AudioSetting{
		SampleRate: 32000,
		Bitrate:    128000,
		Format:     AudioFormatMP3,
		Channel:    1,
	}
}

// Validate checks the audio setting against the allowed values.
func (a *AudioSetting) Validate() error {
	if a.SampleRate != 0 && !slices.Contains(validSampleRates, a.SampleRate) {
		return &ValidationError{Field: "sample_rate", Message: fmt.Sprintf("invalid sample_rate: %d (valid: 8000, 16000, 22050, 24000, 32000, 44100)", a.SampleRate)}
	}
	if a.Bitrate != 0 && !slices.Contains(validBitrates, a.Bitrate) {
		return &ValidationError{Field: "bitrate", Message: fmt.Sprintf("invalid bitrate: %d (valid: 32000, 64000, 128000, 256000)", a.Bitrate)}
	}
	if a.Format != "" && !slices.Contains(validFormats, a.Format) {
		return &ValidationError{Field: "format", Message: fmt.Sprintf("invalid format: %s (valid: mp3, pcm, flac)", a.Format)}
	}
	if a.Channel != 0 && a.Channel != 1 && a.Channel != 2 {
		return &ValidationError{Field: "channel", Message: fmt.Sprintf("channel must be 1 or 2, got %d", a.Channel)}
	}
	return nil
}

// PronunciationDict overrides pronunciation for specific words.
type PronunciationDict struct {
	// Tone is a list of rules, e.g. ["处理/(chu3)(li3)", "danger/dangerous"].
	Tone []string `json:"tone,omitempty" yaml:"tone,omitempty"`
}

// TimberWeight mixes a voice into the synthesis timbre.
type TimberWeight struct {
	// VoiceID is the voice to mix in.
	VoiceID string `json:"voice_id" yaml:"voice_id"`

	// Weight is the mixing weight, 1-100.
	Weight int `json:"weight" yaml:"weight"`
}

// Validate checks the timber weight range.
func (t *TimberWeight) Validate() error {
	if t.Weight < 1 || t.Weight > 100 {
		return &ValidationError{Field: "weight", Message: fmt.Sprintf("weight must be in range [1, 100], got %d", t.Weight)}
	}
	return nil
}

// T2ARequest is a text-to-audio synthesis request.
type T2ARequest struct {
	// Model is the synthesis model, see ValidModels.
	Model string `json:"model" yaml:"model"`

	// Text is the text to synthesize, at most 5000 characters.
	Text string `json:"text" yaml:"text"`

	// VoiceSetting selects and tunes the voice. Required.
	VoiceSetting *VoiceSetting `json:"voice_setting" yaml:"voice_setting"`

	// AudioSetting configures the output audio.
	AudioSetting *AudioSetting `json:"audio_setting,omitempty" yaml:"audio_setting,omitempty"`

	// PronunciationDict overrides pronunciation.
	PronunciationDict *PronunciationDict `json:"pronunciation_dict,omitempty" yaml:"pronunciation_dict,omitempty"`

	// TimberWeights mixes several voices.
	TimberWeights []TimberWeight `json:"timber_weights,omitempty" yaml:"timber_weights,omitempty"`

	// Stream is accepted by the endpoint but streaming is not supported here.
	Stream bool `json:"stream" yaml:"stream"`

	// LanguageBoost enhances pronunciation for a language, see Languages.
	LanguageBoost string `json:"language_boost,omitempty" yaml:"language_boost,omitempty"`

	// SubtitleEnable asks the service to generate subtitles.
	SubtitleEnable bool `json:"subtitle_enable" yaml:"subtitle_enable"`

	// OutputFormat is hex (default) or url.
	OutputFormat OutputFormat `json:"output_format,omitempty" yaml:"output_format,omitempty"`
}

// NewT2ARequest returns a synthesis request with default audio settings and
// hex output.
func NewT2ARequest(model, text string, voice *VoiceSetting) *T2ARequest {
	return &T2ARequest{
		Model:        model,
		Text:         text,
		VoiceSetting: voice,
		AudioSetting: NewAudioSetting(),
		OutputFormat: OutputFormatHex,
	}
}

// Validate checks the request structure: text length, model identifier and
// nested settings. Synthesize applies additional pre-flight rules on top.
func (r *T2ARequest) Validate() error {
	if utf8.RuneCountInString(r.Text) > 5000 {
		return &ValidationError{Field: "text", Message: "Text too long, maximum 5000 characters allowed"}
	}
	if !slices.Contains(ValidModels, r.Model) {
		return &ValidationError{Field: "model", Message: fmt.Sprintf("Invalid model: %s", r.Model)}
	}
	if r.VoiceSetting == nil {
		return &ValidationError{Field: "voice_setting", Message: "voice_setting is required"}
	}
	if err := r.VoiceSetting.Validate(); err != nil {
		return err
	}
	if r.AudioSetting != nil {
		if err := r.AudioSetting.Validate(); err != nil {
			return err
		}
	}
	for i := range r.TimberWeights {
		if err := r.TimberWeights[i].Validate(); err != nil {
			return err
		}
	}
	if r.OutputFormat != "" && r.OutputFormat != OutputFormatHex && r.OutputFormat != OutputFormatURL {
		return &ValidationError{Field: "output_format", Message: fmt.Sprintf("invalid output_format: %s (valid: hex, url)", r.OutputFormat)}
	}
	return nil
}

// T2AData carries the synthesized audio.
type T2AData struct {
	// Audio is the hex-encoded audio payload. Use T2AResponse.AudioBytes to
	// decode it.
	Audio string `json:"audio"`

	// Status is 1 while generating, 2 when complete.
	Status int `json:"status"`

	// Ced is an opaque service field.
	Ced string `json:"ced,omitempty"`
}

// T2AExtra is the synthesis metadata.
type T2AExtra struct {
	// AudioLength is the duration in milliseconds.
	AudioLength int `json:"audio_length"`

	// AudioSampleRate is the sample rate.
	AudioSampleRate int `json:"audio_sample_rate"`

	// AudioSize is the size in bytes.
	AudioSize int `json:"audio_size"`

	// AudioBitrate is the bitrate.
	AudioBitrate int `json:"audio_bitrate"`

	// AudioFormat is the audio format.
	AudioFormat string `json:"audio_format"`

	// AudioChannel is the number of channels.
	AudioChannel int `json:"audio_channel"`

	// InvisibleCharacterRatio is the share of discarded characters.
	InvisibleCharacterRatio float64 `json:"invisible_character_ratio"`

	// UsageCharacters is the billable character count.
	UsageCharacters int `json:"usage_characters"`
}

// T2AResponse is the synthesis response.
type T2AResponse struct {
	// Data holds the audio payload.
	Data T2AData `json:"data"`

	// ExtraInfo holds the synthesis metadata.
	ExtraInfo *T2AExtra `json:"extra_info,omitempty"`

	// TraceID identifies the request for support.
	TraceID string `json:"trace_id"`

	// BaseResp is the status envelope.
	BaseResp *BaseResp `json:"base_resp"`
}

// AudioBytes decodes the hex audio payload into raw bytes.
func (r *T2AResponse) AudioBytes() ([]byte, error) {
	return decodeHexAudio(r.Data.Audio)
}

// ================== Voice Types ==================

// VoiceSlot is a voice created during a voice plan subscription.
type VoiceSlot struct {
	VoiceID     string   `json:"voice_id"`
	VoiceName   string   `json:"voice_name"`
	Description []string `json:"description"`
}

// SystemVoice is a built-in voice.
type SystemVoice struct {
	VoiceID     string   `json:"voice_id"`
	VoiceName   string   `json:"voice_name"`
	Description []string `json:"description"`
}

// ClonedVoice is a voice created through voice cloning.
type ClonedVoice struct {
	VoiceID     string   `json:"voice_id"`
	Description []string `json:"description"`

	// CreatedTime is the creation date (yyyy-mm-dd).
	CreatedTime string `json:"created_time"`
}

// GeneratedVoice is a voice created through the voice design API.
type GeneratedVoice struct {
	VoiceID     string   `json:"voice_id"`
	Description []string `json:"description"`

	// CreatedTime is the creation date (yyyy-mm-dd).
	CreatedTime string `json:"created_time"`
}

// MusicVoice is a voice created through the music generation API.
type MusicVoice struct {
	VoiceID        string `json:"voice_id"`
	InstrumentalID string `json:"instrumental_id"`

	// CreatedTime is the creation date (yyyy-mm-dd).
	CreatedTime string `json:"created_time"`
}

// VoiceListResponse lists the account's voices per category. A category the
// service left out of the payload stays nil; an explicitly empty category
// decodes as an empty, non-nil slice.
type VoiceListResponse struct {
	VoiceSlots      []VoiceSlot      `json:"voice_slots"`
	SystemVoices    []SystemVoice    `json:"system_voice"`
	ClonedVoices    []ClonedVoice    `json:"voice_cloning"`
	GeneratedVoices []GeneratedVoice `json:"voice_generation"`
	MusicVoices     []MusicVoice     `json:"music_generation"`

	// BaseResp is the status envelope.
	BaseResp *BaseResp `json:"base_resp"`
}

// VoiceCloneRequest asks the service to clone a voice from an uploaded
// audio file (mp3, m4a or wav).
type VoiceCloneRequest struct {
	// FileID is the uploaded clone audio, see File.Upload.
	FileID int64 `json:"file_id" yaml:"file_id"`

	// VoiceID names the new voice: at least 8 characters, starting with a
	// letter and containing both letters and digits.
	VoiceID string `json:"voice_id" yaml:"voice_id"`

	// NeedNoiseReduction enables noise reduction on the source audio.
	NeedNoiseReduction bool `json:"need_noise_reduction" yaml:"need_noise_reduction"`

	// Text is an optional preview text, at most 2000 characters.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Model is the model used for the preview, see ValidModels.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Accuracy is the text validation threshold, 0-1.
	Accuracy *float64 `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`

	// NeedVolumeNormalization enables volume normalization.
	NeedVolumeNormalization bool `json:"need_volume_normalization" yaml:"need_volume_normalization"`
}

// DefaultCloneAccuracy is the default text validation threshold.
const DefaultCloneAccuracy = 0.7

// NewVoiceCloneRequest returns a clone request with the default accuracy.
func NewVoiceCloneRequest(fileID int64, voiceID string) *VoiceCloneRequest {
	accuracy := DefaultCloneAccuracy
	return &VoiceCloneRequest{
		FileID:   fileID,
		VoiceID:  voiceID,
		Accuracy: &accuracy,
	}
}

// Validate checks the clone request rules.
func (r *VoiceCloneRequest) Validate() error {
	if utf8.RuneCountInString(r.VoiceID) < 8 {
		return &ValidationError{Field: "voice_id", Message: "voice_id must be at least 8 characters long"}
	}
	first, _ := utf8.DecodeRuneInString(r.VoiceID)
	if !unicode.IsLetter(first) {
		return &ValidationError{Field: "voice_id", Message: "voice_id must start with a letter"}
	}
	hasLetter := false
	hasDigit := false
	for _, c := range r.VoiceID {
		if unicode.IsLetter(c) {
			hasLetter = true
		}
		if unicode.IsDigit(c) {
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &ValidationError{Field: "voice_id", Message: "voice_id must contain both letters and numbers"}
	}
	if r.Text != "" && utf8.RuneCountInString(r.Text) > 2000 {
		return &ValidationError{Field: "text", Message: "text too long, maximum 2000 characters allowed"}
	}
	if r.Accuracy != nil && (*r.Accuracy < 0 || *r.Accuracy > 1) {
		return &ValidationError{Field: "accuracy", Message: "accuracy must be between 0 and 1"}
	}
	if r.Model != "" && !slices.Contains(ValidModels, r.Model) {
		return &ValidationError{Field: "model", Message: fmt.Sprintf("Invalid model: %s", r.Model)}
	}
	return nil
}

// VoiceCloneResponse is the clone response.
type VoiceCloneResponse struct {
	// InputSensitive reports whether the source audio tripped a content check.
	InputSensitive bool `json:"input_sensitive"`

	// BaseResp is the status envelope.
	BaseResp *BaseResp `json:"base_resp"`
}

// VoiceDeleteResponse is the deletion response.
type VoiceDeleteResponse struct {
	// VoiceID is the deleted voice.
	VoiceID string `json:"voice_id"`

	// CreatedTime is when the deleted voice was created.
	CreatedTime string `json:"created_time"`

	// BaseResp is the status envelope.
	BaseResp *BaseResp `json:"base_resp"`
}

// ================== File Types ==================

// FileInfo describes an uploaded file.
type FileInfo struct {
	// FileID is the server-assigned identifier.
	FileID int64 `json:"file_id"`

	// Bytes is the file size.
	Bytes int64 `json:"bytes"`

	// CreatedAt is the creation time as a Unix timestamp in seconds.
	CreatedAt int64 `json:"created_at"`

	// Filename is the uploaded file name.
	Filename string `json:"filename"`

	// Purpose is the declared file purpose.
	Purpose string `json:"purpose"`
}

// FileUploadResponse is the upload response.
type FileUploadResponse struct {
	// File describes the stored file.
	File FileInfo `json:"file"`

	// BaseResp is the status envelope.
	BaseResp *BaseResp `json:"base_resp"`
}

