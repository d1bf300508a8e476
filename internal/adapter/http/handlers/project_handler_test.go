package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solar_portal/internal/adapter/http/handlers/mocks"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/domain/visibility"
	"solar_portal/internal/usecase"
	"solar_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	admin     = entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}
	homeowner = entities.Actor{ID: "homeowner-1", Role: entities.RoleHomeowner}
	installer = entities.Actor{ID: "installer-1", Role: entities.RoleInstaller, ServiceCounties: []string{"Travis"}}
)

func contestedProject() entities.Project {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return entities.Project{
		ID:          "p-1",
		HomeownerID: "homeowner-1",
		Address:     entities.Address{Street: "1 Main St", City: "Austin", County: "Travis"},
		EnergyBill:  200,
		RoofTypeID:  "roof-metal",
		Status:      entities.ProjectStatusContactShared,
		Quotes: []entities.Quote{
			{ID: "q-1", InstallerID: "installer-1", Price: 50000, CostBreakdown: entities.DeriveCostBreakdown(50000)},
			{ID: "q-2", InstallerID: "installer-2", Price: 55000, CostBreakdown: entities.DeriveCostBreakdown(55000)},
		},
		SharedWithInstallerIDs: []string{"installer-2"},
		Version:                4,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func newProjectRouter(h *ProjectHandler, actor entities.Actor) *gin.Engine {
	r := gin.New()
	r.Use(WithActor(actor))
	r.GET("/v1/projects", h.List)
	r.POST("/v1/projects", h.Submit)
	r.GET("/v1/projects/:id", h.Get)
	r.PATCH("/v1/projects/:id", h.Edit)
	r.GET("/v1/projects/:id/contact", h.Contact)
	r.POST("/v1/projects/:id/approve", h.Approve)
	r.POST("/v1/projects/:id/hold", h.Hold)
	r.POST("/v1/projects/:id/share-contact", h.ShareContact)
	r.POST("/v1/projects/:id/quotes", h.SubmitQuote)
	r.POST("/v1/projects/:id/accept", h.AcceptOffer)
	r.POST("/v1/projects/:id/sign", h.MarkAsSigned)
	r.POST("/v1/projects/:id/review", h.LeaveReview)
	r.GET("/v1/installer/dashboard", h.Dashboard)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not json: %v (%s)", err, w.Body.String())
	}
	return body
}

func TestProjectHandler_Get_AppliesVisibility(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("installer sees only its own quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), installer)

		uc.EXPECT().GetByID(gomock.Any(), installer, "p-1").Return(contestedProject(), nil)
		w := do(r, http.MethodGet, "/v1/projects/p-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		quotes := res["quotes"].([]any)
		if len(quotes) != 1 || quotes[0].(map[string]any)["id"] != "q-1" {
			t.Fatalf("expected only q-1, got %v", quotes)
		}
		if res["quote_count"].(float64) != 2 {
			t.Fatalf("expected quote_count 2, got %v", res["quote_count"])
		}
		if _, ok := res["shared_with_installer_ids"]; ok {
			t.Fatalf("installer must not see the shared set: %v", res)
		}
		if res["contact_shared"] != false || res["outcome"] != "open" {
			t.Fatalf("unexpected gate fields: %v", res)
		}
	})

	t.Run("owner sees every quote and the shared set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		uc.EXPECT().GetByID(gomock.Any(), homeowner, "p-1").Return(contestedProject(), nil)
		w := do(r, http.MethodGet, "/v1/projects/p-1", "")

		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res["quotes"].([]any)) != 2 {
			t.Fatalf("expected 2 quotes, got %v", res["quotes"])
		}
		if shared := res["shared_with_installer_ids"].([]any); len(shared) != 1 || shared[0] != "installer-2" {
			t.Fatalf("unexpected shared set: %v", shared)
		}
	})

	t.Run("hidden project is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), installer)

		uc.EXPECT().GetByID(gomock.Any(), installer, "p-9").Return(entities.Project{}, usecase.ErrProjectNotFound)
		w := do(r, http.MethodGet, "/v1/projects/p-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "PROJECT_NOT_FOUND" {
			t.Fatalf("unexpected code %s", body.Code)
		}
	})
}

func TestProjectHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		w := do(r, http.MethodPost, "/v1/projects", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		w := do(r, http.MethodPost, "/v1/projects", `{"energy_bill":100,"roof_type_id":"roof-metal"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		uc.EXPECT().Submit(gomock.Any(), homeowner, lifecycle.ProjectDraft{
			Address:    entities.Address{Street: "1 Main St", City: "Austin", County: "Travis"},
			EnergyBill: 150,
			RoofTypeID: "roof-metal",
		}).Return(entities.Project{ID: "p-1", HomeownerID: "homeowner-1", Status: entities.ProjectStatusPendingApproval, Version: 1}, nil)

		w := do(r, http.MethodPost, "/v1/projects",
			`{"address":{"street":"1 Main St","city":"Austin","county":"Travis"},"energy_bill":150,"roof_type_id":"roof-metal"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("unknown roof type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrUnknownRoofType)
		w := do(r, http.MethodPost, "/v1/projects",
			`{"address":{"street":"1 Main St","city":"Austin","county":"Travis"},"energy_bill":150,"roof_type_id":"thatch"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_TransitionErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"wrong status", &lifecycle.TransitionError{Op: lifecycle.OpAcceptOffer, Expected: []entities.ProjectStatus{entities.ProjectStatusApproved}, Actual: entities.ProjectStatusOnHold}, http.StatusUnprocessableEntity, "PRECONDITION_FAILED"},
		{"already signed", lifecycle.ErrAlreadySigned, http.StatusConflict, "ALREADY_SIGNED"},
		{"conflict", lifecycle.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"forbidden", lifecycle.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"quote not found", lifecycle.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid id", usecase.ErrInvalidProjectID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"storage", errors.New("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIProjectUseCase(ctrl)
			r := newProjectRouter(NewProjectHandler(uc), homeowner)

			uc.EXPECT().AcceptOffer(gomock.Any(), homeowner, "p-1", "q-1").Return(entities.Project{}, tt.err)
			w := do(r, http.MethodPost, "/v1/projects/p-1/accept", `{"quote_id":"q-1"}`)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if body := decodeError(t, w); body.Code != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, body.Code)
			}
		})
	}
}

func TestProjectHandler_PreconditionDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(NewProjectHandler(uc), admin)

	uc.EXPECT().Hold(gomock.Any(), admin, "p-1").Return(entities.Project{}, &lifecycle.TransitionError{
		Op: lifecycle.OpHold, Expected: []entities.ProjectStatus{entities.ProjectStatusApproved, entities.ProjectStatusContactShared}, Actual: entities.ProjectStatusSigned,
	})
	w := do(r, http.MethodPost, "/v1/projects/p-1/hold", "")

	body := decodeError(t, w)
	if body.Details["op"] != lifecycle.OpHold || body.Details["actual"] != "signed" {
		t.Fatalf("unexpected details: %v", body.Details)
	}
	if expected := body.Details["expected"].([]any); len(expected) != 2 {
		t.Fatalf("unexpected expected statuses: %v", expected)
	}
}

func TestProjectHandler_Mutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	signed := contestedProject()
	signed.Status = entities.ProjectStatusSigned
	signed.WinningInstallerID = "installer-1"
	signed.FinalPrice = 49000

	t.Run("approve without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), admin)

		uc.EXPECT().Approve(gomock.Any(), admin, "p-1", "").Return(contestedProject(), nil)
		if w := do(r, http.MethodPost, "/v1/projects/p-1/approve", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve with photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), admin)

		uc.EXPECT().Approve(gomock.Any(), admin, "p-1", "photos/1.jpg").Return(contestedProject(), nil)
		if w := do(r, http.MethodPost, "/v1/projects/p-1/approve", `{"photo_ref":"photos/1.jpg"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("share contact requires installer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		if w := do(r, http.MethodPost, "/v1/projects/p-1/share-contact", `{"installer_id":"  "}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("share contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		uc.EXPECT().ShareContact(gomock.Any(), homeowner, "p-1", "installer-1").Return(contestedProject(), nil)
		if w := do(r, http.MethodPost, "/v1/projects/p-1/share-contact", `{"installer_id":"installer-1"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), admin)

		uc.EXPECT().Edit(gomock.Any(), admin, "p-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, edit lifecycle.ProjectEdit) (entities.Project, error) {
				if edit.Notes == nil || *edit.Notes != "shaded" || edit.Address != nil {
					t.Fatalf("unexpected edit: %+v", edit)
				}
				return contestedProject(), nil
			},
		)
		if w := do(r, http.MethodPatch, "/v1/projects/p-1", `{"notes":"shaded"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mark as signed shows winner its price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), installer)

		uc.EXPECT().MarkAsSigned(gomock.Any(), installer, "p-1", 49000.0).Return(signed, nil)
		w := do(r, http.MethodPost, "/v1/projects/p-1/sign", `{"final_price":49000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["final_price"] != 49000.0 || res["outcome"] != "won" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), homeowner)

		uc.EXPECT().LeaveReview(gomock.Any(), homeowner, "p-1", 4, "tidy work").Return(entities.Project{}, lifecycle.ErrAlreadyReviewed)
		w := do(r, http.MethodPost, "/v1/projects/p-1/review", `{"rating":4,"comment":"tidy work"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestProjectHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(NewProjectHandler(uc), installer)

	p := contestedProject()
	uc.EXPECT().SubmitQuote(gomock.Any(), installer, "p-1", gomock.Any()).Return(p, p.Quotes[0], nil)
	w := do(r, http.MethodPost, "/v1/projects/p-1/quotes",
		`{"price":50000,"system_size_kw":8,"panel_model_id":"panel-1","inverter_model_id":"inv-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var res struct {
		Quote struct {
			ID            string             `json:"id"`
			CostBreakdown map[string]float64 `json:"cost_breakdown"`
		} `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Quote.ID != "q-1" || res.Quote.CostBreakdown["equipment"] != 32500 {
		t.Fatalf("unexpected quote: %+v", res.Quote)
	}

	uc.EXPECT().SubmitQuote(gomock.Any(), installer, "p-1", gomock.Any()).Return(entities.Project{}, entities.Quote{}, lifecycle.ErrNotEligible)
	w = do(r, http.MethodPost, "/v1/projects/p-1/quotes",
		`{"price":50000,"system_size_kw":8,"panel_model_id":"panel-1","inverter_model_id":"inv-1"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestProjectHandler_ListAndDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), admin)

		if w := do(r, http.MethodGet, "/v1/projects?status=bogus", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), admin)

		uc.EXPECT().List(gomock.Any(), admin, usecase.ListQuery{Status: entities.ProjectStatusApproved, County: "Travis"}).
			Return([]entities.Project{contestedProject()}, nil)
		w := do(r, http.MethodGet, "/v1/projects?status=approved&county=Travis", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res) != 1 {
			t.Fatalf("expected 1 project, got %d", len(res))
		}
	})

	t.Run("dashboard has every tab", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(NewProjectHandler(uc), installer)

		uc.EXPECT().InstallerDashboard(gomock.Any(), installer).Return(map[visibility.Bucket][]entities.Project{
			visibility.BucketSubmittedQuote: {contestedProject()},
		}, nil)
		w := do(r, http.MethodGet, "/v1/installer/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string][]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		for _, tab := range []string{"new_leads", "submitted_quotes", "shared_contacts", "signed_deals", "lost_deals"} {
			if res[tab] == nil {
				t.Fatalf("tab %s missing: %v", tab, res)
			}
		}
		if len(res["submitted_quotes"]) != 1 {
			t.Fatalf("expected one submitted quote, got %v", res["submitted_quotes"])
		}
	})
}

func TestProjectHandler_Contact(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(NewProjectHandler(uc), installer)

	uc.EXPECT().HomeownerContact(gomock.Any(), installer, "p-1").Return(entities.ContactInfo{}, lifecycle.ErrForbidden)
	if w := do(r, http.MethodGet, "/v1/projects/p-1/contact", ""); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	uc.EXPECT().HomeownerContact(gomock.Any(), installer, "p-1").Return(entities.ContactInfo{Email: "dana@example.com", Phone: "512"}, nil)
	w := do(r, http.MethodGet, "/v1/projects/p-1/contact", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["email"] != "dana@example.com" || res["phone"] != "512" {
		t.Fatalf("unexpected contact: %v", res)
	}
}
