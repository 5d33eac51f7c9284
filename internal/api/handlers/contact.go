package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/melisaydin/shop-backend/internal/api/httpx"
	"github.com/melisaydin/shop-backend/internal/api/validate"
	"github.com/melisaydin/shop-backend/internal/models"
	"github.com/melisaydin/shop-backend/internal/services"
)

type ContactHandler struct {
	contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string  `json:"name"`
		Email   string  `json:"email"`
		Phone   *string `json:"phone"`
		Message string  `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	c, err := h.contacts.CreateContact(r.Context(), models.Contact{
		Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message,
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Contact message saved successfully.",
		"contact": c,
	})
}

func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	if e := validate.Required("email", req.Email); e != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", e.Msg, validate.Errs{*e})
		return
	}
	sub, err := h.contacts.Subscribe(r.Context(), req.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sub)
}

func (h *ContactHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contacts.ListSubscribers(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if subs == nil {
		subs = []models.Subscriber{}
	}
	httpx.WriteJSON(w, http.StatusOK, subs)
}

func (h *ContactHandler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	if err := h.contacts.DeleteSubscriber(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Subscriber deleted"})
}
