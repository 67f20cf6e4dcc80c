//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexidrill/lexidrill-backend/internal/adapter/provider/dispatch"
	"github.com/lexidrill/lexidrill-backend/internal/adapter/settingsfile"
	"github.com/lexidrill/lexidrill-backend/internal/domain"
	practicesvc "github.com/lexidrill/lexidrill-backend/internal/service/practice"
	settingssvc "github.com/lexidrill/lexidrill-backend/internal/service/settings"
	"github.com/lexidrill/lexidrill-backend/internal/transport/rest"
)

type testServer struct {
	URL    string
	Client *http.Client
}

// geminiStub fakes the native generateContent endpoint. reply produces
// the text the model should return for a given request; requests
// without a key are refused the way the real API refuses them.
func geminiStub(t *testing.T, reply func(r *http.Request) string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") == "" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"message":"API key not valid"}}`))
			return
		}

		body := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": reply(r)}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
}

// newRejectingStub refuses every request the way the native API refuses
// a bad credential.
func newRejectingStub(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid. Please pass a valid API key.","status":"PERMISSION_DENIED"}}`))
	}))
}

// setupTestServer wires the full stack, with the provider pointed at
// the given stub, and returns an HTTP test server for the REST API.
func setupTestServer(t *testing.T, providerURL, apiKey string) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := settingsfile.NewStore(filepath.Join(t.TempDir(), "settings.json"), log)
	defaults := domain.Settings{
		Provider:     domain.ProviderGemini,
		APIKey:       apiKey,
		BaseURL:      providerURL,
		Theme:        "light",
		Opacity:      1,
		ContextCount: 3,
		GrammarCount: 3,
	}
	settingsService, err := settingssvc.NewService(log, store, defaults)
	require.NoError(t, err)

	dispatcher := dispatch.New("", log)
	practiceService := practicesvc.NewService(log, dispatcher, settingsService, "middle school")

	mux := rest.NewRouter(
		rest.NewPracticeHandler(log, practiceService),
		rest.NewSettingsHandler(log, settingsService),
		rest.NewHealthHandler("e2e"),
		nil,
	)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return &testServer{URL: ts.URL, Client: ts.Client()}
}

func (ts *testServer) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
