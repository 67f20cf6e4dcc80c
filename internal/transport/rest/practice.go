package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lexidrill/lexidrill-backend/internal/domain"
)

type practiceService interface {
	GenerateWordPairs(ctx context.Context, rawList string) ([]domain.WordPair, error)
	GenerateContextQuestions(ctx context.Context, rawList string, count int) ([]domain.ContextQuestion, error)
	GenerateGrammarBundle(ctx context.Context, topic, gradeLevel string, count int) (*domain.GrammarBundle, error)
	ExplainMistake(ctx context.Context, sentence, correct, given string) (string, error)
}

// PracticeHandler serves the generation endpoints.
type PracticeHandler struct {
	log     *slog.Logger
	service practiceService
}

func NewPracticeHandler(logger *slog.Logger, svc practiceService) *PracticeHandler {
	return &PracticeHandler{
		log:     logger.With("handler", "practice"),
		service: svc,
	}
}

type wordPairsRequest struct {
	Words string `json:"words"`
}

type wordPairsResponse struct {
	Pairs []domain.WordPair `json:"pairs"`
}

func (h *PracticeHandler) WordPairs(w http.ResponseWriter, r *http.Request) {
	var req wordPairsRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	pairs, err := h.service.GenerateWordPairs(r.Context(), req.Words)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wordPairsResponse{Pairs: pairs})
}

type clozeRequest struct {
	Words string `json:"words"`
	Count int    `json:"count"`
}

type clozeResponse struct {
	Questions []domain.ContextQuestion `json:"questions"`
}

func (h *PracticeHandler) Cloze(w http.ResponseWriter, r *http.Request) {
	var req clozeRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	questions, err := h.service.GenerateContextQuestions(r.Context(), req.Words, req.Count)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, clozeResponse{Questions: questions})
}

type grammarRequest struct {
	Topic      string `json:"topic"`
	GradeLevel string `json:"gradeLevel"`
	Count      int    `json:"count"`
}

func (h *PracticeHandler) Grammar(w http.ResponseWriter, r *http.Request) {
	var req grammarRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	bundle, err := h.service.GenerateGrammarBundle(r.Context(), req.Topic, req.GradeLevel, req.Count)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}

type explainRequest struct {
	Sentence string `json:"sentence"`
	Correct  string `json:"correct"`
	Given    string `json:"given"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

func (h *PracticeHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if !decodeBody(w, r, h.log, &req) {
		return
	}

	explanation, err := h.service.ExplainMistake(r.Context(), req.Sentence, req.Correct, req.Given)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, explainResponse{Explanation: explanation})
}
