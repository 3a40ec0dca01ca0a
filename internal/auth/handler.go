package auth

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "hoteladmin/pkg/http"
	"hoteladmin/pkg/model"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		}); writeErr != nil {
			h.service.log.Error("failed to write JSON response", "handler", "Login", "error", writeErr)
		}
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.service.log.Error("failed to write error response", "handler", "Login", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, loginResponse{Success: true, Token: token}); err != nil {
		h.service.log.Error("failed to write success response", "handler", "Login", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/admin/login", h.Login)
}
