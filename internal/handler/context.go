package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clearplot/internal/errors"
)

// ContextCallerID is the echo context key under which auth middleware
// stores the authenticated caller's user id.
const ContextCallerID = "caller_id"

// CallerID returns the authenticated caller's id, if any.
func CallerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextCallerID).(uuid.UUID)
	return id, ok
}

// respondError maps a domain error onto the standard error envelope.
func respondError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode >= 500 {
		c.Logger().Error(err)
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
