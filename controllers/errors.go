package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/GouravKumar19/slooze/pkg/resp"
	"github.com/GouravKumar19/slooze/services"
)

// respondError maps the service failure classes onto HTTP statuses.
// Anything unclassified is an unexpected failure and becomes a logged 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidState), errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
