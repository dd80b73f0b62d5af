package handlers

import (
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/kosakata/vocab-services/internal/vocabsvc/session"
	"github.com/kosakata/vocab-services/internal/vocabsvc/srs"
)

// StartSession opens a review session over the caller's due words.
// GET /v1/session/start?size=10
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, err := userFromContext(r)
	if err != nil {
		h.errorResponse(w, http.StatusUnauthorized, err)
		return
	}

	size := 0
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		size, err = strconv.Atoi(sizeStr)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, errors.New("invalid size"))
			return
		}
	}

	result, err := h.sessions.StartSession(r.Context(), userID, size)
	if err != nil {
		if errors.Is(err, session.ErrNoCardsAvailable) {
			h.CreateResponse(w, Response{
				Message: "no words due for review, come back later",
				Code:    http.StatusOK,
				Data:    nil,
			})
			return
		}
		log.Errorf("Error [SessionService.StartSession] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: result})
}

type answerRequest struct {
	SessionToken string `json:"session_token" validate:"required"`
	Quality      string `json:"quality" validate:"required"`
	HintUsed     bool   `json:"hint_used"`
}

// SubmitAnswer grades the current word of a session.
// POST /v1/session/answer
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	rating, err := srs.ParseRating(req.Quality)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.sessions.RecordAnswer(r.Context(), req.SessionToken, rating)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrUnknownToken):
			h.errorResponse(w, http.StatusNotFound, err)
		case errors.Is(err, session.ErrSessionComplete), errors.Is(err, session.ErrNotStarted):
			h.errorResponse(w, http.StatusConflict, err)
		case errors.Is(err, srs.ErrInvalidRating):
			h.errorResponse(w, http.StatusBadRequest, err)
		default:
			// Persistence failure: the session has not advanced, the
			// client should retry the same rating.
			log.Errorf("Error [SessionService.RecordAnswer] %s", err)
			h.errorResponse(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: result})
}

// SessionProgress reports the live counters of a session without
// advancing it.
// GET /v1/session/progress?session_token=...
func (h *Handler) SessionProgress(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("session_token")
	if token == "" {
		h.errorResponse(w, http.StatusBadRequest, errors.New("session_token is required"))
		return
	}

	prog, err := h.sessions.Progress(token)
	if err != nil {
		if errors.Is(err, session.ErrUnknownToken) {
			h.errorResponse(w, http.StatusNotFound, err)
			return
		}
		log.Errorf("Error [SessionService.Progress] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: prog})
}

type completeRequest struct {
	SessionToken string `json:"session_token" validate:"required"`
}

// CompleteSession closes a session and returns its final counters.
// POST /v1/session/complete
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	prog, err := h.sessions.CompleteSession(r.Context(), req.SessionToken)
	if err != nil {
		if errors.Is(err, session.ErrUnknownToken) {
			h.errorResponse(w, http.StatusNotFound, err)
			return
		}
		log.Errorf("Error [SessionService.CompleteSession] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: prog})
}
