package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "solar_portal/internal/adapter/http/dto/request"
	response "solar_portal/internal/adapter/http/dto/response"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinanceHandler serves commission records and their collection.
type FinanceHandler struct {
	usecase  usecase.IFinancialUseCase
	log      logger.Logger
	mockMode bool
}

func NewFinanceHandler(uc usecase.IFinancialUseCase, log logger.Logger, paymentMockMode bool) *FinanceHandler {
	return &FinanceHandler{usecase: uc, log: log.Named("finance.handler"), mockMode: paymentMockMode}
}

// @Summary     List financial records
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Param       status query string false "Filter by status"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /finance/records [get]
func (h *FinanceHandler) ListRecords(c *gin.Context) {
	status := entities.FinancialRecordStatus(c.Query("status"))
	switch status {
	case "", entities.FinancialRecordStatusPending, entities.FinancialRecordStatusPaid:
	default:
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	records, err := h.usecase.List(c.Request.Context(), actorFrom(c), status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecords(records))
}

// @Summary     Financial record of a signed project
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/financial-record [get]
func (h *FinanceHandler) GetByProject(c *gin.Context) {
	rec, err := h.usecase.GetByProjectID(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecord(rec))
}

// @Summary     Current commission rate
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /finance/commission-rate [get]
func (h *FinanceHandler) GetCommissionRate(c *gin.Context) {
	rate, err := h.usecase.GetCommissionRate(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CommissionRateResponse{Rate: rate})
}

// @Summary     Change the commission rate
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Param       body body object true "rate"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /finance/commission-rate [put]
func (h *FinanceHandler) SetCommissionRate(c *gin.Context) {
	var payload request.CommissionRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	rate, err := h.usecase.SetCommissionRate(c.Request.Context(), actorFrom(c), payload.Rate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CommissionRateResponse{Rate: rate})
}

// MarkCollected settles a commission paid outside the provider.
//
// @Summary     Mark a commission collected
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Param       id path string true "Financial record ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /finance/records/{id}/mark-collected [post]
func (h *FinanceHandler) MarkCollected(c *gin.Context) {
	var payload request.MarkCollectedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	rec, err := h.usecase.MarkCollected(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Reference)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecord(rec))
}

// CollectCommission charges the winning installer through Mercado Pago. The
// body is the provider payment payload, optionally wrapped in mp_payload.
//
// @Summary     Collect a commission through Mercado Pago
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Param       id path string true "Financial record ID"
// @Param       body body object true "Mercado Pago payment payload"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /finance/records/{id}/collect [post]
func (h *FinanceHandler) CollectCommission(c *gin.Context) {
	recordID := c.Param("id")
	log := h.log.WithFields(map[string]interface{}{"record_id": recordID})
	log.Debug("collect start", nil)

	payload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.WithError(err).Info("invalid payment payload", nil)
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
		log.WithError(err).Debug("payload invalid in mock mode; using empty payload", nil)
		payload = json.RawMessage("{}")
	}

	payment, rec, err := h.usecase.CollectCommission(c.Request.Context(), actorFrom(c), recordID, payload)
	if err != nil {
		log.WithError(err).Warn("collect failed", nil)
		appErr := mapError(err)
		if payment.ID != "" {
			appErr = appErr.WithDetails(map[string]any{"payment_id": payment.ID, "payment_status": string(payment.Status)})
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("collect success", map[string]interface{}{"payment_id": payment.ID, "status": string(payment.Status)})

	c.JSON(http.StatusOK, response.CollectionResponse{
		Payment: response.FromCommissionPayment(payment),
		Record:  response.FromFinancialRecord(rec),
	})
}

// @Summary     Collection attempts of a record
// @Tags        finance
// @Produce     json
// @Security    UserID
// @Param       id path string true "Financial record ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /finance/records/{id}/payments [get]
func (h *FinanceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissionPayments(payments))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
