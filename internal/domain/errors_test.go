package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrAPIKeyMissing, true},
		{"wrapped sentinel", fmt.Errorf("dispatch: %w", ErrAPIKeyMissing), true},
		{"invalid key text", errors.New("openai: invalid key"), true},
		{"401 status", errors.New("openai: HTTP 401"), true},
		{"gemini key not valid", errors.New("gemini: API key not valid. Please pass a valid API key."), true},
		{"not found", errors.New("gemini: models/foo is not found for API version v1beta"), true},
		{"rate limit", errors.New("openai: HTTP 429"), false},
		{"network", errors.New("dial tcp: connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	err := NewValidationError("opacity", "must be between 0 and 1")
	if !errors.Is(err, ErrValidation) {
		t.Error("expected errors.Is(err, ErrValidation) to be true")
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := Settings{
		Provider:     ProviderAuto,
		Opacity:      0.9,
		ContextCount: 5,
		GrammarCount: 5,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	bad := valid
	bad.Provider = "claude"
	bad.Opacity = 1.5
	err := bad.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Errors) != 2 {
		t.Errorf("len(Errors) = %d, want 2", len(verr.Errors))
	}
}
