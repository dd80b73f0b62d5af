package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kosakata/vocab-services/internal/vocabsvc/service"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth
	validate  *validator.Validate

	db       *pgxpool.Pool
	users    *service.UserService
	words    *service.WordService
	sessions *service.SessionService
	typing   *service.TypingService
	stats    *service.StatsService
}

func NewHandler(db *pgxpool.Pool, users *service.UserService, words *service.WordService,
	sessions *service.SessionService, typing *service.TypingService, stats *service.StatsService) *Handler {
	return &Handler{
		validate: validator.New(),
		db:       db,
		users:    users,
		words:    words,
		sessions: sessions,
		typing:   typing,
		stats:    stats,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) errorResponse(w http.ResponseWriter, code int, err error) {
	h.CreateResponse(w, Response{Code: code, Error: err.Error()})
}

// decodeAndValidate parses a JSON body and runs struct validation on it.
func (h *Handler) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// userFromContext pulls the learner id out of the verified JWT claims.
func userFromContext(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("token missing user_id claim")
	}
	return int64(id), nil
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.CreateResponse(w, Response{
			Message: "database unreachable",
			Code:    http.StatusServiceUnavailable,
			Error:   err.Error(),
		})
		return
	}

	h.CreateResponse(w, Response{
		Message: "vocab service is running at port " + os.Getenv("VOCAB_SERVICE_PORT"),
		Code:    http.StatusOK,
		Data: map[string]interface{}{
			"status":    "healthy",
			"database":  "connected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
