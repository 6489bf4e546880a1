package minimaxspeech_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/haivivi/minimax-speech-go/pkg/minimaxspeech"
)

// batchReq builds a valid synthesis request for the given text.
func batchReq(text string) *minimaxspeech.T2ARequest {
	return minimaxspeech.NewT2ARequest(
		minimaxspeech.ModelSpeech02HD,
		text,
		minimaxspeech.NewVoiceSetting(minimaxspeech.VoiceWiseWoman),
	)
}

// echoTextHandler answers every synthesis request with audio equal to the
// request text, failing requests whose text is failText.
func echoTextHandler(failText string, hits *atomic.Int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		var req struct {
			Text string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&req)

		if failText != "" && req.Text == failText {
			okJSON(w, errBody(1042, "risky content"))
			return
		}
		okJSON(w, t2aBody([]byte(req.Text)))
	})
}

func TestSynthesizeBatch_OrderedResults(t *testing.T) {
	client := newTestClient(t, echoTextHandler("fail me", nil))

	texts := []string{"one", "two", "fail me", "four"}
	reqs := make([]*minimaxspeech.T2ARequest, len(texts))
	for i, text := range texts {
		reqs[i] = batchReq(text)
	}

	results := client.Speech.SynthesizeBatch(context.Background(), reqs, 2)
	if len(results) != len(reqs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(reqs))
	}

	for i, res := range results {
		if i == 2 {
			if res.Err == nil {
				t.Fatal("results[2].Err = nil, want error")
			}
			e, ok := minimaxspeech.AsError(res.Err)
			if !ok {
				t.Fatalf("results[2] error type = %T, want *Error", res.Err)
			}
			if e.StatusCode != 1042 {
				t.Errorf("results[2] StatusCode = %d, want 1042", e.StatusCode)
			}
			continue
		}
		if res.Err != nil {
			t.Fatalf("results[%d].Err = %v", i, res.Err)
		}
		audio, err := res.Response.AudioBytes()
		if err != nil {
			t.Fatalf("results[%d] AudioBytes: %v", i, err)
		}
		if string(audio) != texts[i] {
			t.Errorf("results[%d] audio = %q, want %q", i, audio, texts[i])
		}
	}
}

func TestSynthesizeBatch_BoundedConcurrency(t *testing.T) {
	var inflight, peak atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inflight.Add(-1)
		okJSON(w, t2aBody([]byte("x")))
	}))

	reqs := make([]*minimaxspeech.T2ARequest, 12)
	for i := range reqs {
		reqs[i] = batchReq("hello")
	}

	results := client.Speech.SynthesizeBatch(context.Background(), reqs, 3)
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("results[%d].Err = %v", i, res.Err)
		}
	}
	if p := peak.Load(); p > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", p)
	}
}

func TestSynthesizeBatch_DefaultConcurrency(t *testing.T) {
	var inflight, peak atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inflight.Add(-1)
		okJSON(w, t2aBody([]byte("x")))
	}))

	reqs := make([]*minimaxspeech.T2ARequest, 15)
	for i := range reqs {
		reqs[i] = batchReq("hello")
	}

	results := client.Speech.SynthesizeBatch(context.Background(), reqs, 0)
	if len(results) != 15 {
		t.Fatalf("len(results) = %d, want 15", len(results))
	}
	if p := peak.Load(); p > int64(minimaxspeech.DefaultBatchConcurrency) {
		t.Errorf("peak concurrency = %d, want <= %d", p, minimaxspeech.DefaultBatchConcurrency)
	}
}

func TestSynthesizeBatch_MixedValidation(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, echoTextHandler("", &hits))

	reqs := []*minimaxspeech.T2ARequest{
		batchReq("fine"),
		batchReq(""), // fails validation, never dispatched
		batchReq("also fine"),
	}

	results := client.Speech.SynthesizeBatch(context.Background(), reqs, 2)

	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("valid requests failed: %v, %v", results[0].Err, results[2].Err)
	}
	if _, ok := minimaxspeech.AsValidationError(results[1].Err); !ok {
		t.Fatalf("results[1] error = %v, want *ValidationError", results[1].Err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2", got)
	}
}

func TestSynthesizeBatch_Canceled(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, echoTextHandler("", &hits))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := []*minimaxspeech.T2ARequest{batchReq("a"), batchReq("b"), batchReq("c")}
	results := client.Speech.SynthesizeBatch(ctx, reqs, 2)

	for i, res := range results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, res.Err)
		}
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0 after cancellation", got)
	}
}

func TestSynthesizeBatch_RateLimit(t *testing.T) {
	client := newTestClient(t, echoTextHandler("", nil))

	reqs := []*minimaxspeech.T2ARequest{batchReq("a"), batchReq("b"), batchReq("c")}

	start := time.Now()
	results := client.Speech.SynthesizeBatch(context.Background(), reqs, 3,
		minimaxspeech.WithBatchRateLimit(rate.Every(30*time.Millisecond), 1),
	)
	elapsed := time.Since(start)

	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("results[%d].Err = %v", i, res.Err)
		}
	}
	// One token up front, then one every 30ms: three requests need >= 60ms.
	if elapsed < 50*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 50ms with rate limiting", elapsed)
	}
}

func TestSynthesizeBatch_Empty(t *testing.T) {
	client := newTestClient(t, echoTextHandler("", nil))

	results := client.Speech.SynthesizeBatch(context.Background(), nil, 4)
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}
