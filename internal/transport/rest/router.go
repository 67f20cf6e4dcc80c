package rest

import "net/http"

// NewRouter mounts all REST routes. The generation endpoints accept an
// optional rate limiting middleware so config can switch it off without
// branching here.
func NewRouter(
	practice *PracticeHandler,
	settings *SettingsHandler,
	health *HealthHandler,
	limit func(http.Handler) http.Handler,
) *http.ServeMux {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/practice/word-pairs", limit(http.HandlerFunc(practice.WordPairs)))
	mux.Handle("POST /api/v1/practice/cloze", limit(http.HandlerFunc(practice.Cloze)))
	mux.Handle("POST /api/v1/practice/grammar", limit(http.HandlerFunc(practice.Grammar)))
	mux.Handle("POST /api/v1/practice/explain", limit(http.HandlerFunc(practice.Explain)))

	mux.HandleFunc("GET /api/v1/settings", settings.Get)
	mux.HandleFunc("PUT /api/v1/settings", settings.Put)

	mux.HandleFunc("GET /livez", health.Live)
	mux.HandleFunc("GET /healthz", health.Health)

	return mux
}
