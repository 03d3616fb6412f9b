package handler

import (
	"errors"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps the domain sentinel errors onto the HTTP
// error responses. Anything unrecognized is a 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		utils.BadRequest(c, "Invalid request")
	case errors.Is(err, model.ErrAlreadyCompleted):
		utils.BadRequest(c, "Habit already completed today")
	case errors.Is(err, model.ErrNotFound):
		utils.NotFound(c, "Resource not found")
	case errors.Is(err, model.ErrNotOwner):
		utils.Unauthorized(c, "Not authorized")
	case errors.Is(err, model.ErrDuplicate):
		utils.Conflict(c, "Resource already exists")
	default:
		utils.TrackError("handler", "internal_error")
		utils.InternalError(c, "Internal server error")
	}
}

// requireUserID pulls the authenticated user id set by the auth
// middleware.
func requireUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		utils.Unauthorized(c, "Invalid user ID")
		return "", false
	}
	return id, true
}
