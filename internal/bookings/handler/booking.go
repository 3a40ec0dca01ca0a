package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"hoteladmin/internal/bookings/service"
	"hoteladmin/pkg/contracts"
	httputil "hoteladmin/pkg/http"
	"hoteladmin/pkg/logger"
	"hoteladmin/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	guard   contracts.Guard
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, guard contracts.Guard, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

type bookResponse struct {
	Success bool                   `json:"success"`
	Booking *model.BookingWithRoom `json:"booking"`
}

// Book is the public guest-facing booking creation endpoint.
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Book", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, bookResponse{Success: true, Booking: booking}); err != nil {
		h.log.Error("failed to write created response", "handler", "Book", "error", err)
	}
}

// List returns all bookings joined with their room summaries as a bare array;
// the admin frontend consumes it directly.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, http.StatusOK, "Booking deleted"); err != nil {
		h.log.Error("failed to write response", "handler", "Delete", "error", err)
	}
}

func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Reset(r.Context()); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Reset", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, http.StatusOK, "All rooms reset"); err != nil {
		h.log.Error("failed to write response", "handler", "Reset", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/book", h.Book)
	router.GET("/api/admin/bookings", h.guard(h.List))
	router.DELETE("/api/admin/bookings/:id", h.guard(h.Delete))
	// Unbook is an alias kept for the admin frontend.
	router.DELETE("/api/admin/unbook/:id", h.guard(h.Delete))
	router.POST("/api/admin/reset", h.guard(h.Reset))
}
