package minimaxspeech

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the default MiniMax API base URL.
	DefaultBaseURL = "https://api.minimax.io/v1"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the default value of the max-retries setting. The
	// setting is carried for configuration compatibility; requests are never
	// retried automatically.
	DefaultMaxRetries = 3

	// EnvAPIKey is the environment variable consulted when no API key is
	// passed to NewClient.
	EnvAPIKey = "MINIMAX_API_KEY"

	// EnvGroupID is the environment variable consulted when no group ID is
	// passed to NewClient.
	EnvGroupID = "MINIMAX_GROUP_ID"
)

// Client is the MiniMax speech API client. A client is safe for concurrent
// use; its configuration is fixed at construction.
type Client struct {
	// Speech provides speech synthesis operations.
	Speech *SpeechService

	// Voice provides voice listing, cloning and deletion.
	Voice *VoiceService

	// File provides file upload operations.
	File *FileService

	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey     string
	groupID    string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The client then reuses it as its
// session and Close never discards it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetry sets the max-retries setting. The value is recorded for
// configuration compatibility only; no request is ever retried
// automatically.
func WithRetry(maxRetries int) Option {
	return func(c *clientConfig) {
		c.maxRetries = maxRetries
	}
}

// NewClient creates a MiniMax speech client.
//
// An empty apiKey falls back to the MINIMAX_API_KEY environment variable and
// an empty groupID to MINIMAX_GROUP_ID; construction fails when either is
// still missing.
//
// Example:
//
//	client, err := minimaxspeech.NewClient("", "")  // from environment
//	client, err := minimaxspeech.NewClient(key, group,
//	    minimaxspeech.WithTimeout(60*time.Second))
func NewClient(apiKey, groupID string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		apiKey:     apiKey,
		groupID:    groupID,
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv(EnvAPIKey)
	}
	if cfg.groupID == "" {
		cfg.groupID = os.Getenv(EnvGroupID)
	}
	if cfg.apiKey == "" {
		return nil, errors.New("minimax: API key is required: set MINIMAX_API_KEY or pass it to NewClient")
	}
	if cfg.groupID == "" {
		return nil, errors.New("minimax: group ID is required: set MINIMAX_GROUP_ID or pass it to NewClient")
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	c.Speech = newSpeechService(c)
	c.Voice = newVoiceService(c)
	c.File = newFileService(c)

	return c, nil
}

// GroupID returns the configured group ID.
func (c *Client) GroupID() string {
	return c.config.groupID
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}

// MaxRetries returns the recorded max-retries setting. See WithRetry.
func (c *Client) MaxRetries() int {
	return c.config.maxRetries
}

// Close releases idle connections held by the transport session. It is safe
// to call more than once; a later request transparently opens a fresh
// session.
func (c *Client) Close() {
	c.http.Close()
}

// String describes the client without exposing the API key.
func (c *Client) String() string {
	return fmt.Sprintf("minimaxspeech.Client(group_id=%s, base_url=%s)", c.config.groupID, c.config.baseURL)
}
