package minimaxspeech_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

// newTestClient builds a client pointed at a fake API server. The server is
// closed when the test finishes.
func newTestClient(t *testing.T, handler http.Handler) *minimaxspeech.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := minimaxspeech.NewClient("test-key", "test-group",
		minimaxspeech.WithBaseURL(srv.URL),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

// t2aBody builds a successful synthesis response carrying the given audio.
func t2aBody(audio []byte) []byte {
	b, _ := json.Marshal(map[string]any{
		"data": map[string]any{
			"audio":  hex.EncodeToString(audio),
			"status": 2,
		},
		"extra_info": map[string]any{
			"audio_length":      1187,
			"audio_sample_rate": 32000,
			"audio_size":        len(audio),
			"audio_bitrate":     128000,
			"audio_format":      "mp3",
			"audio_channel":     1,
			"usage_characters":  7,
		},
		"trace_id":  "trace-123",
		"base_resp": map[string]any{"status_code": 0, "status_msg": "success"},
	})
	return b
}

// errBody builds a 200 response whose envelope reports a failure.
func errBody(code int64, msg string) []byte {
	b, _ := json.Marshal(map[string]any{
		"base_resp": map[string]any{"status_code": code, "status_msg": msg},
	})
	return b
}

// okJSON writes body with the JSON content type.
func okJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := minimaxspeech.NewClient("key", "group")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if got := client.BaseURL(); got != minimaxspeech.DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", got, minimaxspeech.DefaultBaseURL)
	}
	if got := client.GroupID(); got != "group" {
		t.Errorf("GroupID() = %q, want %q", got, "group")
	}
	if got := client.MaxRetries(); got != minimaxspeech.DefaultMaxRetries {
		t.Errorf("MaxRetries() = %d, want %d", got, minimaxspeech.DefaultMaxRetries)
	}
	if client.Speech == nil || client.Voice == nil || client.File == nil {
		t.Error("service fields not initialized")
	}
}

func TestNewClient_EnvFallback(t *testing.T) {
	t.Setenv(minimaxspeech.EnvAPIKey, "env-key")
	t.Setenv(minimaxspeech.EnvGroupID, "env-group")

	client, err := minimaxspeech.NewClient("", "")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if got := client.GroupID(); got != "env-group" {
		t.Errorf("GroupID() = %q, want %q", got, "env-group")
	}
}

func TestNewClient_ExplicitBeatsEnv(t *testing.T) {
	t.Setenv(minimaxspeech.EnvAPIKey, "env-key")
	t.Setenv(minimaxspeech.EnvGroupID, "env-group")

	client, err := minimaxspeech.NewClient("key", "group")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if got := client.GroupID(); got != "group" {
		t.Errorf("GroupID() = %q, want %q", got, "group")
	}
}

func TestNewClient_MissingCredentials(t *testing.T) {
	t.Setenv(minimaxspeech.EnvAPIKey, "")
	t.Setenv(minimaxspeech.EnvGroupID, "")

	tests := []struct {
		name    string
		apiKey  string
		groupID string
		want    string
	}{
		{"no key", "", "group", "API key is required"},
		{"no group", "key", "", "group ID is required"},
		{"nothing", "", "", "API key is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := minimaxspeech.NewClient(tt.apiKey, tt.groupID)
			if err == nil {
				t.Fatal("NewClient: expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestNewClient_Options(t *testing.T) {
	client, err := minimaxspeech.NewClient("key", "group",
		minimaxspeech.WithBaseURL("https://example.com/v1"),
		minimaxspeech.WithTimeout(5*time.Second),
		minimaxspeech.WithRetry(7),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if got := client.BaseURL(); got != "https://example.com/v1" {
		t.Errorf("BaseURL() = %q, want %q", got, "https://example.com/v1")
	}
	if got := client.MaxRetries(); got != 7 {
		t.Errorf("MaxRetries() = %d, want 7", got)
	}
}

func TestClient_CloseAndReuse(t *testing.T) {
	hits := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		okJSON(w, t2aBody([]byte("audio")))
	}))

	ctx := context.Background()
	if _, err := client.Speech.SynthesizeSimple(ctx, "hello", ""); err != nil {
		t.Fatalf("SynthesizeSimple: %v", err)
	}

	// Close is idempotent and a later request opens a fresh session.
	client.Close()
	client.Close()

	if _, err := client.Speech.SynthesizeSimple(ctx, "hello again", ""); err != nil {
		t.Fatalf("SynthesizeSimple after Close: %v", err)
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2", hits)
	}
	client.Close()
}

func TestClient_CustomHTTPClientSurvivesClose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		okJSON(w, t2aBody([]byte("audio")))
	}))
	t.Cleanup(srv.Close)

	custom := &http.Client{Timeout: 10 * time.Second}
	client, err := minimaxspeech.NewClient("key", "group",
		minimaxspeech.WithBaseURL(srv.URL),
		minimaxspeech.WithHTTPClient(custom),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	client.Close()
	if _, err := client.Speech.SynthesizeSimple(context.Background(), "hi", ""); err != nil {
		t.Fatalf("SynthesizeSimple after Close: %v", err)
	}
}

func TestClient_StringHidesAPIKey(t *testing.T) {
	client, err := minimaxspeech.NewClient("super-secret", "group-1")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	s := client.String()
	if strings.Contains(s, "super-secret") {
		t.Errorf("String() leaks the API key: %q", s)
	}
	if !strings.Contains(s, "group-1") {
		t.Errorf("String() = %q, want group ID included", s)
	}
}
