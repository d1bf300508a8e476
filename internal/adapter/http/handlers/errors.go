package handlers

import (
	"errors"
	"net/http"

	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/usecase"
	"solar_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or unknown user", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError translates use case and domain errors into the HTTP envelope.
// Order matters where sentinels wrap each other: ErrAlreadyReviewed wraps
// ErrPreconditionFailed, and every *NotFound wraps lifecycle.ErrNotFound.
func mapError(err error) *pkg.AppError {
	var transition *lifecycle.TransitionError

	switch {
	case errors.As(err, &transition):
		expected := make([]string, 0, len(transition.Expected))
		for _, s := range transition.Expected {
			expected = append(expected, string(s))
		}
		return pkg.NewDomainError("PRECONDITION_FAILED", "Project is not in a state that allows this operation", err, http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"op": transition.Op, "expected": expected, "actual": string(transition.Actual)})
	case errors.Is(err, lifecycle.ErrAlreadyReviewed):
		return pkg.NewDomainErrorSimple("ALREADY_REVIEWED", "A review was already submitted for this project", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "Project is already signed", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Project was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyCollected):
		return pkg.NewDomainErrorSimple("ALREADY_COLLECTED", "Commission already collected", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrPreconditionFailed):
		return pkg.NewDomainError("PRECONDITION_FAILED", "Project is not in a state that allows this operation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, lifecycle.ErrNotEligible):
		return pkg.NewDomainErrorSimple("NOT_ELIGIBLE", "Not eligible for this project", http.StatusUnprocessableEntity)
	case errors.Is(err, lifecycle.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("FINANCIAL_RECORD_NOT_FOUND", "Financial record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownRoofType), errors.Is(err, usecase.ErrUnknownEquipment):
		return pkg.NewDomainError("CATALOG_ITEM_NOT_FOUND", "Unknown catalog item", err, http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidRecordID),
		errors.Is(err, usecase.ErrInvalidCommissionRate),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).
			WithDetails(map[string]any{"reason": err.Error()})
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
