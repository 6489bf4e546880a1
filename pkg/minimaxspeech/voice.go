package minimaxspeech

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// VoiceService provides voice listing, cloning and deletion.
type VoiceService struct {
	client *Client
}

// newVoiceService creates a new voice service.
func newVoiceService(client *Client) *VoiceService {
	return &VoiceService{client: client}
}

// CloneOption adjusts a request built by CloneSimple.
type CloneOption func(*VoiceCloneRequest)

// WithCloneText sets the preview text spoken with the cloned voice, at most
// 2000 characters.
func WithCloneText(text string) CloneOption {
	return func(r *VoiceCloneRequest) { r.Text = text }
}

// WithCloneModel selects the model used for the preview audio.
func WithCloneModel(model string) CloneOption {
	return func(r *VoiceCloneRequest) { r.Model = model }
}

// WithCloneAccuracy sets the text validation accuracy threshold, range
// [0, 1].
func WithCloneAccuracy(accuracy float64) CloneOption {
	return func(r *VoiceCloneRequest) { r.Accuracy = &accuracy }
}

// WithNoiseReduction toggles noise reduction on the clone source audio.
func WithNoiseReduction(enabled bool) CloneOption {
	return func(r *VoiceCloneRequest) { r.NeedNoiseReduction = enabled }
}

// WithVolumeNormalization toggles volume normalization on the clone source
// audio.
func WithVolumeNormalization(enabled bool) CloneOption {
	return func(r *VoiceCloneRequest) { r.NeedVolumeNormalization = enabled }
}

// List fetches the voices visible to the account, filtered by type. An
// empty voiceType lists everything. Categories the service leaves out of
// the payload stay nil in the response.
func (s *VoiceService) List(ctx context.Context, voiceType VoiceType) (*VoiceListResponse, error) {
	if voiceType == "" {
		voiceType = VoiceTypeAll
	}
	switch voiceType {
	case VoiceTypeAll, VoiceTypeSystem, VoiceTypeCloning, VoiceTypeGeneration, VoiceTypeMusic:
	default:
		return nil, &ValidationError{Field: "voice_type", Message: fmt.Sprintf("invalid voice_type: %s", voiceType)}
	}

	slog.Debug("minimax: list voices", "voice_type", voiceType)

	form := url.Values{}
	form.Set("voice_type", string(voiceType))

	var resp VoiceListResponse
	// This endpoint is addressed without the GroupId parameter.
	u := s.client.http.endpointURL(endpointGetVoice, false)
	if err := s.client.http.postForm(ctx, "list voices", u, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Slots returns the account's voice slots, nil when the service reports
// none.
func (s *VoiceService) Slots(ctx context.Context) ([]VoiceSlot, error) {
	resp, err := s.List(ctx, VoiceTypeAll)
	if err != nil {
		return nil, err
	}
	return resp.VoiceSlots, nil
}

// SystemVoices returns the built-in system voices.
func (s *VoiceService) SystemVoices(ctx context.Context) ([]SystemVoice, error) {
	resp, err := s.List(ctx, VoiceTypeSystem)
	if err != nil {
		return nil, err
	}
	return resp.SystemVoices, nil
}

// ClonedVoices returns the voices cloned by the account.
func (s *VoiceService) ClonedVoices(ctx context.Context) ([]ClonedVoice, error) {
	resp, err := s.List(ctx, VoiceTypeCloning)
	if err != nil {
		return nil, err
	}
	return resp.ClonedVoices, nil
}

// GeneratedVoices returns the voices produced by voice generation.
func (s *VoiceService) GeneratedVoices(ctx context.Context) ([]GeneratedVoice, error) {
	resp, err := s.List(ctx, VoiceTypeGeneration)
	if err != nil {
		return nil, err
	}
	return resp.GeneratedVoices, nil
}

// MusicVoices returns the voices produced by music generation.
func (s *VoiceService) MusicVoices(ctx context.Context) ([]MusicVoice, error) {
	resp, err := s.List(ctx, VoiceTypeMusic)
	if err != nil {
		return nil, err
	}
	return resp.MusicVoices, nil
}

// Clone creates a custom voice from an uploaded audio file.
//
// The request is validated before any network dispatch. The voice ID must
// be at least 8 characters, start with a letter and contain both letters
// and numbers. Check the response's InputSensitive flag to see whether the
// preview text tripped the content filter.
func (s *VoiceService) Clone(ctx context.Context, req *VoiceCloneRequest) (*VoiceCloneResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("minimax: clone voice",
		"voice_id", req.VoiceID,
		"file_id", req.FileID,
		"model", req.Model)

	var resp VoiceCloneResponse
	u := s.client.http.endpointURL(endpointVoiceClone, true)
	if err := s.client.http.postJSON(ctx, "clone voice", u, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CloneSimple clones a voice from an uploaded file with the default
// accuracy threshold. Options add preview text, model and audio
// preprocessing knobs.
func (s *VoiceService) CloneSimple(ctx context.Context, fileID int64, voiceID string, opts ...CloneOption) (*VoiceCloneResponse, error) {
	req := NewVoiceCloneRequest(fileID, voiceID)
	for _, opt := range opts {
		opt(req)
	}
	return s.Clone(ctx, req)
}

// Delete removes a custom voice. An empty voiceType deletes a cloned
// voice. Deleting an unknown ID surfaces whatever the service returns,
// there is no local existence check.
func (s *VoiceService) Delete(ctx context.Context, voiceID string, voiceType DeleteVoiceType) (*VoiceDeleteResponse, error) {
	if voiceID == "" {
		return nil, &ValidationError{Field: "voice_id", Message: "voice_id is required"}
	}
	if voiceType == "" {
		voiceType = DeleteVoiceCloning
	}
	switch voiceType {
	case DeleteVoiceCloning, DeleteVoiceGeneration:
	default:
		return nil, &ValidationError{Field: "voice_type", Message: fmt.Sprintf("invalid voice_type: %s", voiceType)}
	}

	slog.Debug("minimax: delete voice", "voice_id", voiceID, "voice_type", voiceType)

	payload := struct {
		VoiceID   string          `json:"voice_id"`
		VoiceType DeleteVoiceType `json:"voice_type"`
	}{VoiceID: voiceID, VoiceType: voiceType}

	var resp VoiceDeleteResponse
	u := s.client.http.endpointURL(endpointVoiceDelete, true)
	if err := s.client.http.postJSON(ctx, "delete voice", u, payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateVoiceID builds a random voice ID that satisfies the clone naming
// rules. The prefix must start with a letter; an empty or non-conforming
// prefix falls back to "voice".
func GenerateVoiceID(prefix string) string {
	first, _ := utf8.DecodeRuneInString(prefix)
	if prefix == "" || !unicode.IsLetter(first) {
		prefix = "voice"
	}
	u := uuid.New()
	return fmt.Sprintf("%s%d%x", prefix, u[0]%10, u[1:5])
}
