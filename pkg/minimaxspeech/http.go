package minimaxspeech

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// API endpoint paths. All but the voice listing carry the GroupId query
// parameter.
const (
	endpointT2A         = "/t2a_v2"
	endpointGetVoice    = "/get_voice"
	endpointFileUpload  = "/files/upload"
	endpointVoiceClone  = "/voice_clone"
	endpointVoiceDelete = "/delete_voice"
)

// httpClient handles HTTP communication with the MiniMax speech API. The
// underlying session is created on first use and can be closed and reopened;
// every operation funnels through do.
type httpClient struct {
	baseURL string
	apiKey  string
	groupID string
	timeout time.Duration

	mu     sync.Mutex
	client *http.Client
	owned  bool
}

// newHTTPClient creates the transport. A caller-supplied http.Client is
// installed directly; otherwise the session is built lazily.
func newHTTPClient(cfg *clientConfig) *httpClient {
	h := &httpClient{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		apiKey:  cfg.apiKey,
		groupID: cfg.groupID,
		timeout: cfg.timeout,
	}
	if cfg.httpClient != nil {
		h.client = cfg.httpClient
	}
	return h
}

// session returns the HTTP client, creating it on first use.
func (h *httpClient) session() *http.Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.client == nil {
		h.client = &http.Client{Timeout: h.timeout}
		h.owned = true
	}
	return h.client
}

// Close releases idle connections. Safe to call repeatedly; a later request
// opens a fresh session. A caller-supplied client is kept.
func (h *httpClient) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.client == nil {
		return
	}
	h.client.CloseIdleConnections()
	if h.owned {
		h.client = nil
		h.owned = false
	}
}

// endpointURL builds the absolute URL for an endpoint, attaching the GroupId
// query parameter unless the endpoint is addressed without it.
func (h *httpClient) endpointURL(path string, withGroup bool) string {
	u := h.baseURL + path
	if withGroup {
		u += "?GroupId=" + url.QueryEscape(h.groupID)
	}
	return u
}

// postJSON sends a JSON payload and decodes the typed response.
func (h *httpClient) postJSON(ctx context.Context, op, rawurl string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}
	return h.do(ctx, op, rawurl, "application/json", bytes.NewReader(body), result)
}

// postForm sends URL-encoded form values and decodes the typed response.
func (h *httpClient) postForm(ctx context.Context, op, rawurl string, form url.Values, result any) error {
	return h.do(ctx, op, rawurl, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), result)
}

// upload streams a multipart form from a goroutine through an io.Pipe, so
// the file never has to fit in memory.
func (h *httpClient) upload(ctx context.Context, op, rawurl string, file io.Reader, filename string, fields map[string]string, result any) error {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	errCh := make(chan error, 1)
	go func() {
		defer pw.Close()

		for key, value := range fields {
			if err := writer.WriteField(key, value); err != nil {
				errCh <- fmt.Errorf("write field %s: %w", key, err)
				return
			}
		}

		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			errCh <- fmt.Errorf("create form file: %w", err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			errCh <- fmt.Errorf("copy file: %w", err)
			return
		}

		if err := writer.Close(); err != nil {
			errCh <- fmt.Errorf("close writer: %w", err)
			return
		}

		errCh <- nil
	}()

	resp, err := h.send(ctx, op, rawurl, writer.FormDataContentType(), pr)
	if err != nil {
		pr.Close()
		return err
	}
	defer resp.Body.Close()

	if writeErr := <-errCh; writeErr != nil {
		return fmt.Errorf("%s: %w", op, writeErr)
	}

	return h.handleResponse(op, resp, result)
}

// do performs one POST exchange: send, then decode and check the response.
func (h *httpClient) do(ctx context.Context, op, rawurl, contentType string, body io.Reader, result any) error {
	resp, err := h.send(ctx, op, rawurl, contentType, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return h.handleResponse(op, resp, result)
}

// send dispatches the request and classifies transport failures.
func (h *httpClient) send(ctx context.Context, op, rawurl, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawurl, body)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}

	h.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := h.session().Do(req)
	if err != nil {
		return nil, classifyTransportErr(op, rawurl, err)
	}
	return resp, nil
}

// classifyTransportErr separates timeouts from other network failures.
// Timeouts get their own type so callers can retry them specifically.
func classifyTransportErr(op, rawurl string, err error) error {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &TimeoutError{Op: op, URL: rawurl, Err: err}
	}
	return &TransportError{Op: op, URL: rawurl, Err: err}
}

// setHeaders sets the authentication headers the API expects on every
// request.
func (h *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("authority", "api.minimax.io")
	req.Header.Set("User-Agent", "minimax-speech-go/1.0")
}

// envelope is the part of every response checked before the typed decode.
type envelope struct {
	BaseResp *BaseResp `json:"base_resp"`
}

// handleResponse reads the body, checks the HTTP status, then the base_resp
// envelope, and finally decodes the typed result. Success is carried by
// status_msg, not the numeric code.
func (h *httpClient) handleResponse(op string, resp *http.Response, result any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		return parseHTTPError(body, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s: invalid JSON response: %w", op, err)
	}
	if env.BaseResp == nil {
		return fmt.Errorf("%s: invalid response: missing base_resp", op)
	}
	if !env.BaseResp.Success() {
		return &Error{
			StatusCode: env.BaseResp.StatusCode,
			StatusMsg:  env.BaseResp.StatusMsg,
			HTTPStatus: resp.StatusCode,
			Raw:        body,
		}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%s: unmarshal response: %w", op, err)
		}
	}
	return nil
}

// parseHTTPError turns a non-200 response into an *Error, keeping the
// envelope codes when the body carries one.
func parseHTTPError(body []byte, httpStatus int) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.BaseResp != nil {
		return &Error{
			StatusCode: env.BaseResp.StatusCode,
			StatusMsg:  env.BaseResp.StatusMsg,
			HTTPStatus: httpStatus,
			Raw:        body,
		}
	}

	return &Error{
		StatusMsg:  string(body),
		HTTPStatus: httpStatus,
		Raw:        body,
	}
}

// decodeHexAudio decodes hex-encoded audio data.
func decodeHexAudio(hexData string) ([]byte, error) {
	// Remove any whitespace
	hexData = strings.ReplaceAll(hexData, " ", "")
	hexData = strings.ReplaceAll(hexData, "\n", "")

	return hex.DecodeString(hexData)
}
