package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"payment_portal/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &service.Error{Kind: service.ErrValidation, Message: "x"}, http.StatusBadRequest},
		{"conflict", &service.Error{Kind: service.ErrConflict, Message: "x"}, http.StatusBadRequest},
		{"auth", &service.Error{Kind: service.ErrAuth, Message: "x"}, http.StatusUnauthorized},
		{"not found", &service.Error{Kind: service.ErrNotFound, Message: "x"}, http.StatusNotFound},
		{"store", &service.Error{Kind: service.ErrStore, Message: "x"}, http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handler: %w", &service.Error{Kind: service.ErrAuth, Message: "x"}), http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
