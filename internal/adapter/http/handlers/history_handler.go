package handlers

import (
	"net/http"

	response "solar_portal/internal/adapter/http/dto/response"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the admin audit trail.
type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// @Summary     Admin audit trail
// @Tags        history
// @Produce     json
// @Security    UserID
// @Param       limit query integer false "Maximum number of items"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	entries, err := h.usecase.List(c.Request.Context(), actorFrom(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(entries))
}
