package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sumityadav0955/travel-guide-backend-go/internal/service"
	"github.com/sumityadav0955/travel-guide-backend-go/pkg/response"
)

// parseID parses a path parameter as an int64 ID
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// serviceError translates service sentinel errors into HTTP responses
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrDuplicateReview):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrSelfMessage),
		errors.Is(err, service.ErrInvalidBounds):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
