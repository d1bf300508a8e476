package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"review twice", lifecycle.ErrAlreadyReviewed, http.StatusConflict, "ALREADY_REVIEWED"},
		{"precondition", lifecycle.ErrPreconditionFailed, http.StatusUnprocessableEntity, "PRECONDITION_FAILED"},
		{"not eligible", lifecycle.ErrNotEligible, http.StatusUnprocessableEntity, "NOT_ELIGIBLE"},
		{"wrapped conflict", fmt.Errorf("commit: %w", lifecycle.ErrConcurrentModification), http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"installer missing", usecase.ErrInstallerNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"roof type", usecase.ErrUnknownRoofType, http.StatusNotFound, "CATALOG_ITEM_NOT_FOUND"},
		{"equipment", usecase.ErrUnknownEquipment, http.StatusNotFound, "CATALOG_ITEM_NOT_FOUND"},
		{"invalid input", lifecycle.ErrInvalidInput, http.StatusBadRequest, "INVALID_REQUEST"},
		{"bad record id", usecase.ErrInvalidRecordID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"collected", usecase.ErrAlreadyCollected, http.StatusConflict, "ALREADY_COLLECTED"},
		{"provider bad request", usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{"provider customer", usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
		{"provider users", usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest, "PAYMENT_PROVIDER_INVALID_USERS"},
		{"provider auth", usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Code != tt.code {
				t.Fatalf("expected %d/%s, got %d/%s", tt.status, tt.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
