package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/user-task-api/internal/errors"
	"github.com/yukikurage/user-task-api/internal/services"
)

const (
	msgNoUserFound    = "There is no user found"
	msgUserNotFound   = "User was not found"
	msgNoTaskFound    = "There is no task found"
	msgInvalidPayload = "Invalid request body"
)

// queryID parses a required numeric query parameter, responding 400 on failure.
func queryID(c *gin.Context, key string) (uint64, bool) {
	return parseID(c, key, c.Query(key))
}

// paramID parses a numeric path parameter, responding 400 on failure.
func paramID(c *gin.Context, key string) (uint64, bool) {
	return parseID(c, key, c.Param(key))
}

func parseID(c *gin.Context, key, raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", key))
		return 0, false
	}
	return id, true
}

// respondServiceError maps service errors onto API errors.
// notFoundMessage is used when the service reports a missing entity.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, notFoundMessage)
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, services.ErrUsernameTaken.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
