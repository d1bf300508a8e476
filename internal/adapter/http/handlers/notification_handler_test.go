package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"solar_portal/internal/adapter/http/handlers/mocks"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(h *NotificationHandler, actor entities.Actor) *gin.Engine {
	r := gin.New()
	r.Use(WithActor(actor))
	r.GET("/v1/notifications", h.List)
	r.POST("/v1/notifications/:id/read", h.MarkRead)
	return r
}

func TestNotificationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	r := newNotificationRouter(NewNotificationHandler(uc), installer)

	for _, bad := range []string{"-1", "ten"} {
		if w := do(r, http.MethodGet, "/v1/notifications?limit="+bad, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("limit %s: expected 400, got %d", bad, w.Code)
		}
	}

	uc.EXPECT().ListForUser(gomock.Any(), installer, 20).Return([]entities.Notification{
		{ID: "n-2", UserID: "installer-1", MessageKey: usecase.MsgInstallerNewLead, Link: "/installerDashboard", CreatedAt: time.Now()},
		{ID: "n-1", UserID: "installer-1", MessageKey: usecase.MsgInstallerContactShared, IsRead: true, CreatedAt: time.Now()},
	}, 1, nil)
	w := do(r, http.MethodGet, "/v1/notifications?limit=20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Items []struct {
			ID            string         `json:"id"`
			MessageParams map[string]any `json:"message_params"`
		} `json:"items"`
		Unread int `json:"unread"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Items) != 2 || res.Unread != 1 || res.Items[0].ID != "n-2" {
		t.Fatalf("unexpected list: %+v", res)
	}
	if res.Items[0].MessageParams == nil {
		t.Fatalf("message params should serialize as an object")
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	r := newNotificationRouter(NewNotificationHandler(uc), installer)

	uc.EXPECT().MarkRead(gomock.Any(), installer, "n-9").Return(entities.Notification{}, usecase.ErrNotificationNotFound)
	if w := do(r, http.MethodPost, "/v1/notifications/n-9/read", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().MarkRead(gomock.Any(), installer, "n-1").Return(entities.Notification{ID: "n-1", IsRead: true}, nil)
	w := do(r, http.MethodPost, "/v1/notifications/n-1/read", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["is_read"] != true {
		t.Fatalf("expected read notification, got %v", res)
	}
}
