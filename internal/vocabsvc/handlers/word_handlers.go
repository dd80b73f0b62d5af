package handlers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/kosakata/vocab-services/internal/vocabsvc/models"
	"github.com/kosakata/vocab-services/internal/vocabsvc/service"
)

// ListWords returns the whole vocabulary.
// GET /v1/words
func (h *Handler) ListWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.words.ListWords(r.Context())
	if err != nil {
		log.Errorf("Error [WordService.ListWords] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: words})
}

type addWordRequest struct {
	English         string  `json:"english" validate:"required"`
	Indonesian      string  `json:"indonesian" validate:"required"`
	PartOfSpeech    string  `json:"part_of_speech"`
	ExampleSentence string  `json:"example_sentence"`
	DifficultyScore float64 `json:"difficulty_score"`
}

// AddWord seeds one vocabulary entry.
// POST /v1/words
func (h *Handler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	word, err := h.words.AddWord(r.Context(), models.Word{
		English:         req.English,
		Indonesian:      req.Indonesian,
		PartOfSpeech:    req.PartOfSpeech,
		ExampleSentence: req.ExampleSentence,
		DifficultyScore: req.DifficultyScore,
	})
	if err != nil {
		log.Errorf("Error [WordService.AddWord] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusCreated, Data: word})
}

// DueCount reports how many words are currently due.
// GET /v1/due-count
func (h *Handler) DueCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.stats.CountDue(r.Context())
	if err != nil {
		log.Errorf("Error [StatsService.CountDue] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: map[string]int{"due_count": count}})
}

// GetStats returns the learner dashboard aggregates.
// GET /v1/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		log.Errorf("Error [StatsService.GetStats] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: stats})
}

// TypingNext returns the most urgent due word for the typing drill.
// GET /v1/typing/next
func (h *Handler) TypingNext(w http.ResponseWriter, r *http.Request) {
	word, err := h.typing.NextWord(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			h.CreateResponse(w, Response{
				Message: "no words due for review",
				Code:    http.StatusNotFound,
			})
			return
		}
		log.Errorf("Error [TypingService.NextWord] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: word})
}

type typingAnswerRequest struct {
	WordID       int64   `json:"word_id" validate:"required"`
	UserAnswer   string  `json:"user_answer" validate:"required"`
	ResponseTime float64 `json:"response_time"`
}

// TypingAnswer grades one typed answer.
// POST /v1/typing/answer
func (h *Handler) TypingAnswer(w http.ResponseWriter, r *http.Request) {
	userID, err := userFromContext(r)
	if err != nil {
		h.errorResponse(w, http.StatusUnauthorized, err)
		return
	}

	var req typingAnswerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.typing.SubmitAnswer(r.Context(), userID, req.WordID, req.UserAnswer, req.ResponseTime)
	if err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			h.errorResponse(w, http.StatusNotFound, err)
			return
		}
		log.Errorf("Error [TypingService.SubmitAnswer] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: result})
}
