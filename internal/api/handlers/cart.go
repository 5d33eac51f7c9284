package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/melisaydin/shop-backend/internal/api/httpx"
	"github.com/melisaydin/shop-backend/internal/middleware"
	"github.com/melisaydin/shop-backend/internal/services"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		writeErr(w, services.ErrUnauthorized)
		return
	}
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	it, err := h.carts.Add(r.Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, it)
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		writeErr(w, services.ErrUnauthorized)
		return
	}
	items, err := h.carts.Get(r.Context(), uid)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		writeErr(w, services.ErrUnauthorized)
		return
	}
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	it, err := h.carts.Update(r.Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, it)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		writeErr(w, services.ErrUnauthorized)
		return
	}
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	if err := h.carts.Remove(r.Context(), uid, req.ProductID); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Item removed"})
}
