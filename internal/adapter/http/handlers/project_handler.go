package handlers

import (
	"context"
	"net/http"

	request "solar_portal/internal/adapter/http/dto/request"
	response "solar_portal/internal/adapter/http/dto/response"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes the project lifecycle. Every response goes through
// response.FromProject so the visibility gate applies to the caller.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// Submit creates a project in pending_approval for the calling homeowner.
//
// @Summary     Submit a project
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       body body object true "Project form"
// @Success     201 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects [post]
func (h *ProjectHandler) Submit(c *gin.Context) {
	var payload request.SubmitProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	p, err := h.usecase.Submit(c.Request.Context(), actor, payload.ToDraft())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p, actor))
}

// @Summary     List projects visible to the caller
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       status query string false "Filter by status"
// @Param       county query string false "Filter by county"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	actor := actorFrom(c)
	q := usecase.ListQuery{
		Status: entities.ProjectStatus(c.Query("status")),
		County: c.Query("county"),
	}
	if q.Status != "" && !q.Status.Valid() {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	projects, err := h.usecase.List(c.Request.Context(), actor, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects, actor))
}

// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	actor := actorFrom(c)
	p, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p, actor))
}

// Contact returns the homeowner contact once it has been shared with the caller.
//
// @Summary     Homeowner contact once shared
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/contact [get]
func (h *ProjectHandler) Contact(c *gin.Context) {
	contact, err := h.usecase.HomeownerContact(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

// @Summary     Edit a project
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Param       body body object true "Fields to change"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id} [patch]
func (h *ProjectHandler) Edit(c *gin.Context) {
	var payload request.EditProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.Edit(ctx, actor, c.Param("id"), payload.ToEdit())
	})
}

// Approve accepts an empty body; photo_ref is optional.
//
// @Summary     Approve a pending project
// @Tags        moderation
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/approve [post]
func (h *ProjectHandler) Approve(c *gin.Context) {
	var payload request.ApproveProjectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.Approve(ctx, actor, c.Param("id"), payload.PhotoRef)
	})
}

// @Summary     Put a project on hold
// @Tags        moderation
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/hold [post]
func (h *ProjectHandler) Hold(c *gin.Context) {
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.Hold(ctx, actor, c.Param("id"))
	})
}

// @Summary     Restore a held project
// @Tags        moderation
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/restore [post]
func (h *ProjectHandler) Restore(c *gin.Context) {
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.Restore(ctx, actor, c.Param("id"))
	})
}

// @Summary     Delete a project
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.Delete(ctx, actor, c.Param("id"))
	})
}

// @Summary     Share homeowner contact with an installer
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Param       body body object true "installer_id"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/share-contact [post]
func (h *ProjectHandler) ShareContact(c *gin.Context) {
	var payload request.ShareContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveInstallerID() == "" {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.ShareContact(ctx, actor, c.Param("id"), payload.ResolveInstallerID())
	})
}

// SubmitQuote adds the installer's quote or revises the one it already has.
//
// @Summary     Submit or revise the caller's quote
// @Tags        quotes
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Param       body body object true "Quote form"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/quotes [post]
func (h *ProjectHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	p, q, err := h.usecase.SubmitQuote(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.QuoteSubmittedResponse{
		Quote:   response.FromQuote(q),
		Project: response.FromProject(p, actor),
	})
}

// @Summary     Accept a quote
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Param       body body object true "quote_id"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/accept [post]
func (h *ProjectHandler) AcceptOffer(c *gin.Context) {
	var payload request.AcceptOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.AcceptOffer(ctx, actor, c.Param("id"), payload.QuoteID)
	})
}

// MarkAsSigned is the installer side of signing, with a negotiated final price.
//
// @Summary     Mark the deal as signed
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Param       body body object true "final_price"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/sign [post]
func (h *ProjectHandler) MarkAsSigned(c *gin.Context) {
	var payload request.MarkAsSignedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.MarkAsSigned(ctx, actor, c.Param("id"), payload.FinalPrice)
	})
}

// @Summary     Review the winning installer
// @Tags        projects
// @Produce     json
// @Security    UserID
// @Param       id path string true "Project ID"
// @Param       body body object true "rating and comment"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /projects/{id}/review [post]
func (h *ProjectHandler) LeaveReview(c *gin.Context) {
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	actor := actorFrom(c)
	h.respond(c, actor, func(ctx context.Context) (entities.Project, error) {
		return h.usecase.LeaveReview(ctx, actor, c.Param("id"), payload.Rating, payload.Comment)
	})
}

// @Summary     Installer dashboard tabs
// @Tags        installers
// @Produce     json
// @Security    UserID
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /installer/dashboard [get]
func (h *ProjectHandler) Dashboard(c *gin.Context) {
	actor := actorFrom(c)
	board, err := h.usecase.InstallerDashboard(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(board, actor))
}

func (h *ProjectHandler) respond(c *gin.Context, actor entities.Actor, op func(ctx context.Context) (entities.Project, error)) {
	p, err := op(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p, actor))
}
