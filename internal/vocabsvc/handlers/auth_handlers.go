package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

type loginRequest struct {
	AnonCode  string `json:"anon_code" validate:"required"`
	ClassName string `json:"class_name"`
}

// Login resolves an anonymous class code to a learner and hands back a
// signed token for the protected routes.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.users.Login(r.Context(), req.AnonCode, req.ClassName)
	if err != nil {
		log.Errorf("Error [UserService.Login] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}

	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"user_id": user.UserId,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	})
	if err != nil {
		log.Errorf("Error encoding token %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]interface{}{
			"user_id": user.UserId,
			"token":   tokenString,
		},
	})
}

// Me returns the learner behind the presented token.
// GET /v1/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := userFromContext(r)
	if err != nil {
		h.errorResponse(w, http.StatusUnauthorized, err)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		log.Errorf("Error [UserService.GetByID] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		h.CreateResponse(w, Response{Code: http.StatusNotFound, Error: "user not found"})
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: user})
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// requireAdmin gates the admin routes behind the shared admin key, the
// same scheme the classroom dashboard uses.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := os.Getenv("ADMIN_KEY")
		if key == "" || r.Header.Get("X-Admin-Key") != key {
			h.CreateResponse(w, Response{Code: http.StatusForbidden, Error: "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
