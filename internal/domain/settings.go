package domain

// ProviderKind selects the wire convention used to reach the model.
type ProviderKind string

const (
	// ProviderAuto resolves to OpenAI or Gemini from the key shape.
	ProviderAuto   ProviderKind = "auto"
	ProviderOpenAI ProviderKind = "openai"
	ProviderGemini ProviderKind = "gemini"
)

// Valid reports whether k is a known provider kind.
func (k ProviderKind) Valid() bool {
	switch k {
	case ProviderAuto, ProviderOpenAI, ProviderGemini:
		return true
	}
	return false
}

// Settings is the user-adjustable runtime configuration. It is loaded once
// at startup from the settings file and replaced only through an explicit
// save; JSON tags round-trip the blob verbatim.
type Settings struct {
	Provider         ProviderKind `json:"provider"`
	APIKey           string       `json:"apiKey"`
	BaseURL          string       `json:"baseUrl"`
	Model            string       `json:"model"`
	AllowInflections bool         `json:"allowInflections"`
	Theme            string       `json:"theme"`
	Opacity          float64      `json:"opacity"`
	ContextCount     int          `json:"contextCount"`
	GrammarCount     int          `json:"grammarCount"`
}

// Validate checks field ranges before a save is accepted.
func (s Settings) Validate() error {
	var errs []FieldError
	if !s.Provider.Valid() {
		errs = append(errs, FieldError{Field: "provider", Message: "must be auto, openai or gemini"})
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		errs = append(errs, FieldError{Field: "opacity", Message: "must be between 0 and 1"})
	}
	if s.ContextCount <= 0 {
		errs = append(errs, FieldError{Field: "contextCount", Message: "must be positive"})
	}
	if s.GrammarCount <= 0 {
		errs = append(errs, FieldError{Field: "grammarCount", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
