package rest

import (
	"log/slog"
	"net/http"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

type settingsService interface {
	Current() domain.Settings
	Update(set domain.Settings) (domain.Settings, error)
}

// SettingsHandler serves the settings read and update endpoints.
type SettingsHandler struct {
	log     *slog.Logger
	service settingsService
}

func NewSettingsHandler(logger *slog.Logger, svc settingsService) *SettingsHandler {
	return &SettingsHandler{
		log:     logger.With("handler", "settings"),
		service: svc,
	}
}

// Get returns the current settings. The API key is redacted down to a
// boolean so the credential never leaves the server.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, redact(h.service.Current()))
}

func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req domain.Settings
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	// The GET view never exposes the key, so clients echo it back empty.
	// An empty key on update keeps the stored one.
	if req.APIKey == "" {
		req.APIKey = h.service.Current().APIKey
	}

	updated, err := h.service.Update(req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, redact(updated))
}

type settingsView struct {
	Provider         domain.ProviderKind `json:"provider"`
	HasAPIKey        bool                `json:"hasApiKey"`
	BaseURL          string              `json:"baseUrl,omitempty"`
	Model            string              `json:"model,omitempty"`
	AllowInflections bool                `json:"allowInflections"`
	Theme            string              `json:"theme"`
	Opacity          float64             `json:"opacity"`
	ContextCount     int                 `json:"contextCount"`
	GrammarCount     int                 `json:"grammarCount"`
}

func redact(set domain.Settings) settingsView {
	return settingsView{
		Provider:         set.Provider,
		HasAPIKey:        set.APIKey != "",
		BaseURL:          set.BaseURL,
		Model:            set.Model,
		AllowInflections: set.AllowInflections,
		Theme:            set.Theme,
		Opacity:          set.Opacity,
		ContextCount:     set.ContextCount,
		GrammarCount:     set.GrammarCount,
	}
}
