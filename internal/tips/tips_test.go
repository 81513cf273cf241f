package tips

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProvider struct {
	tip   string
	err   error
	calls atomic.Int32
}

func (p *stubProvider) Tip(context.Context) (string, error) {
	p.calls.Add(1)
	return p.tip, p.err
}

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func TestGeminiProvider_Tip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "technical analysis")

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" Let the trend be your friend. "}]}}]}`))
	}))
	defer srv.Close()

	tip, err := NewGeminiProvider(testConfig(srv.URL), srv.Client()).Tip(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Let the trend be your friend.", tip)
}

func TestGeminiProvider_NoCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := NewGeminiProvider(testConfig(srv.URL), srv.Client()).Tip(context.Background())
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestGeminiProvider_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewGeminiProvider(testConfig(srv.URL), srv.Client()).Tip(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestService_NoKeyNeverCallsProvider(t *testing.T) {
	p := &stubProvider{tip: "unused"}
	cfg := DefaultConfig()

	s := NewService(cfg, p, zap.NewNop())

	assert.Equal(t, NoKeyTip, s.Current())
	assert.Equal(t, NoKeyTip, s.Refresh(context.Background()))
	assert.Equal(t, int32(0), p.calls.Load())
}

func TestService_Refresh(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
		want     string
	}{
		{"success", &stubProvider{tip: "Cut losses early."}, "Cut losses early."},
		{"empty text", &stubProvider{tip: ""}, EmptyTip},
		{"provider error", &stubProvider{err: errors.New("boom")}, ErrorTip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(testConfig(""), tt.provider, zap.NewNop())
			assert.Equal(t, NoKeyTip, s.Current())

			got := s.Refresh(context.Background())

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestService_RefreshTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	s := NewService(cfg, NewGeminiProvider(cfg, srv.Client()), zap.NewNop())

	assert.Equal(t, ErrorTip, s.Refresh(context.Background()))
}

func TestService_StartStop(t *testing.T) {
	p := &stubProvider{tip: "Patience pays."}
	s := NewService(testConfig(""), p, zap.NewNop())

	require.NoError(t, s.Start())
	assert.Eventually(t, func() bool { return s.Current() == "Patience pays." }, time.Second, 10*time.Millisecond)
	s.Stop()
	s.Stop()
}

func TestService_StartBadSchedule(t *testing.T) {
	cfg := testConfig("")
	cfg.RefreshCron = "not a schedule"
	s := NewService(cfg, &stubProvider{}, zap.NewNop())

	assert.Error(t, s.Start())
}
