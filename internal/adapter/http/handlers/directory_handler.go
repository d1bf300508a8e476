package handlers

import (
	"net/http"

	response "solar_portal/internal/adapter/http/dto/response"
	"solar_portal/internal/infrastructure/catalog"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogLister is the read side of the equipment catalog.
type CatalogLister interface {
	Listing() catalog.Listing
}

// DirectoryHandler serves user profiles and the reference catalog.
type DirectoryHandler struct {
	usecase usecase.IDirectoryUseCase
	catalog CatalogLister
}

func NewDirectoryHandler(uc usecase.IDirectoryUseCase, catalog CatalogLister) *DirectoryHandler {
	return &DirectoryHandler{usecase: uc, catalog: catalog}
}

// Me returns the caller's own profile, phone included.
//
// @Summary     Caller profile
// @Tags        users
// @Produce     json
// @Security    UserID
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /me [get]
func (h *DirectoryHandler) Me(c *gin.Context) {
	u, err := h.usecase.Resolve(c.Request.Context(), actorFrom(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// @Summary     List installers
// @Tags        installers
// @Produce     json
// @Security    UserID
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /installers [get]
func (h *DirectoryHandler) ListInstallers(c *gin.Context) {
	users, err := h.usecase.ListInstallers(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// @Summary     Get an installer
// @Tags        installers
// @Produce     json
// @Security    UserID
// @Param       id path string true "Installer ID"
// @Success     200 "OK"
// @Failure     401 "Unauthenticated"
// @Router      /installers/{id} [get]
func (h *DirectoryHandler) GetInstaller(c *gin.Context) {
	u, err := h.usecase.GetInstaller(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// @Summary     Roof types and equipment models
// @Tags        catalog
// @Produce     json
// @Success     200 "OK"
// @Router      /catalog [get]
func (h *DirectoryHandler) Catalog(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusOK, catalog.Listing{})
		return
	}
	c.JSON(http.StatusOK, h.catalog.Listing())
}
