package handlers

import (
	"net/http"
	"strconv"

	response "solar_portal/internal/adapter/http/dto/response"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List returns the caller's notifications newest first.
//
// @Summary     Caller notifications
// @Tags        notifications
// @Produce     json
// @Security    UserID
// @Param       limit query integer false "Maximum number of items"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	items, unread, err := h.usecase.ListForUser(c.Request.Context(), actorFrom(c), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(items, unread))
}

// @Summary     Mark a notification read
// @Tags        notifications
// @Produce     json
// @Security    UserID
// @Param       id path string true "Notification ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

// queryLimit reads ?limit=; absent means zero and lets the use case pick.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
