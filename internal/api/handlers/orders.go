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

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Products   []models.OrderItem `json:"products"`
		TotalPrice float64            `json:"totalPrice"`
		Status     models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	var errs validate.Errs
	if len(req.Products) == 0 {
		errs = append(errs, validate.ErrField{Field: "products", Msg: "required"})
	}
	for _, it := range req.Products {
		if e := validate.Required("products.productId", it.ProductID); e != nil {
			errs = append(errs, *e)
		}
		if e := validate.MinInt("products.quantity", int64(it.Quantity), 1); e != nil {
			errs = append(errs, *e)
		}
	}
	if req.TotalPrice <= 0 {
		errs = append(errs, validate.ErrField{Field: "totalPrice", Msg: "must be > 0"})
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", errs.Error(), errs)
		return
	}
	o, err := h.orders.Create(r.Context(), req.Products, req.TotalPrice, req.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}
	o, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}
