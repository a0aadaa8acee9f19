package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"service-attendance/internal/service"
)

type AuthHandler struct {
	auth     *service.AuthService
	logger   *zap.Logger
	validate *validator.Validate
}

func NewAuthHandler(auth *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger, validate: validator.New()}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Info("login rejected", zap.String("username", req.Username))
		respondServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
