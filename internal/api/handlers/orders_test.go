package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Request-shape failures are rejected before any service call, so a nil
// service is safe here.
func TestOrderCreateValidation(t *testing.T) {
	h := NewOrderHandler(nil)

	cases := []struct {
		name string
		body string
	}{
		{"MalformedJSON", `{`},
		{"EmptyProducts", `{"products":[],"totalPrice":10}`},
		{"MissingProductID", `{"products":[{"quantity":2}],"totalPrice":10}`},
		{"ZeroQuantity", `{"products":[{"productId":"p1","quantity":0}],"totalPrice":10}`},
		{"MissingTotal", `{"products":[{"productId":"p1","quantity":2}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubscribeValidation(t *testing.T) {
	h := NewContactHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
