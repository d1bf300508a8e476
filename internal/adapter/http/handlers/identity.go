package handlers

import (
	"errors"
	"strings"

	"solar_portal/internal/domain/entities"
	"solar_portal/internal/domain/lifecycle"
	"solar_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the caller's id. Authentication happens upstream; the
// service only resolves the id to a role.
const HeaderUserID = "X-User-ID"

const actorKey = "actor"

// Identity resolves the caller once per request and stores the Actor in the
// gin context.
func Identity(directory usecase.IDirectoryUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			abortWith(c, errUnauthenticated)
			return
		}
		user, err := directory.Resolve(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, lifecycle.ErrNotFound):
				abortWith(c, errUnauthenticated)
			default:
				abortWith(c, mapError(err))
			}
			return
		}
		c.Set(actorKey, user.Actor())
		c.Next()
	}
}

// actorFrom returns the actor stored by Identity. Routes mounted without the
// middleware get the zero Actor, which every role gate rejects.
func actorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return entities.Actor{}
}

// WithActor is used by tests and internal callers to inject an actor
// without going through the directory.
func WithActor(a entities.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, a)
		c.Next()
	}
}
