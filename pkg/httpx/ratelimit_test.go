package httpx_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/educonnect/portal/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestIPKeyExtractor(t *testing.T) {
	t.Run("extracts from RemoteAddr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"

		require.Equal(t, "192.168.1.1", httpx.IPKeyExtractor(req))
	})

	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")

		require.Equal(t, "203.0.113.1", httpx.IPKeyExtractor(req))
	})

	t.Run("uses X-Real-IP if X-Forwarded-For absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("X-Real-IP", "203.0.113.2")

		require.Equal(t, "203.0.113.2", httpx.IPKeyExtractor(req))
	})
}

func TestCompositeKeyExtractor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	extractor := httpx.CompositeKeyExtractor(":",
		httpx.IPKeyExtractor,
		func(*http.Request) string { return "suffix" },
		func(*http.Request) string { return "" }, // empty parts are dropped
	)
	require.Equal(t, "192.168.1.1:suffix", extractor(req))
}

func TestRateLimitMiddlewareEnforcesBurst(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 2,
		Window:            time.Minute,
		Burst:             2,
	}

	handler := httpx.RateLimitByIP(config)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do("192.168.1.1:1").Code)
	require.Equal(t, http.StatusOK, do("192.168.1.1:2").Code)

	limited := do("192.168.1.1:3")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.NotEmpty(t, limited.Header().Get("Retry-After"))

	// A different IP has its own bucket.
	require.Equal(t, http.StatusOK, do("10.0.0.1:1").Code)
}

func TestRateLimitByIPAndJSONField(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}

	var seenBody string
	handler := httpx.RateLimitByIPAndJSONField(config, "phoneOrEmail")(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			seenBody = string(body)
			w.WriteHeader(http.StatusOK)
		}))

	do := func(payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.RemoteAddr = "192.168.1.1:12345"
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := `{"phoneOrEmail":"0821234567"}`
	require.Equal(t, http.StatusOK, do(first).Code)

	// The handler still sees the full body after the middleware peeked at it.
	require.Equal(t, first, seenBody)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(seenBody), &decoded))
	require.Equal(t, "0821234567", decoded["phoneOrEmail"])

	// Same IP and identifier: limited.
	require.Equal(t, http.StatusTooManyRequests, do(first).Code)

	// Same IP, different identifier: separate bucket.
	require.Equal(t, http.StatusOK, do(`{"phoneOrEmail":"other@example.com"}`).Code)
}

func TestRateLimitJSONFieldPeekKeepsLargeBodies(t *testing.T) {
	config := httpx.RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}

	var seenLen int
	handler := httpx.RateLimitByIPAndJSONField(config, "phoneOrEmail")(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			seenLen = len(body)
			w.WriteHeader(http.StatusOK)
		}))

	// Well past the middleware's peek window; the handler must still see
	// every byte.
	payload := `{"phoneOrEmail":"0821234567","note":"` + strings.Repeat("x", 128<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.RemoteAddr = "192.168.1.9:12345"
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, len(payload), seenLen)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATELIMIT_TEST_REQUESTS", "42")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
	t.Setenv("RATELIMIT_TEST_BURST", "7")

	config := httpx.ParseRateLimitFromEnv("TEST", httpx.RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	})
	require.Equal(t, 42, config.RequestsPerWindow)
	require.Equal(t, 30*time.Second, config.Window)
	require.Equal(t, 7, config.Burst)

	t.Run("ignores invalid values", func(t *testing.T) {
		t.Setenv("RATELIMIT_BAD_REQUESTS", "zero")
		config := httpx.ParseRateLimitFromEnv("BAD", httpx.RateLimitConfig{
			RequestsPerWindow: 5,
			Window:            time.Minute,
			Burst:             5,
		})
		require.Equal(t, 5, config.RequestsPerWindow)
	})
}
