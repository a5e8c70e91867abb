package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"greencart/internal/auth"
	apperrors "greencart/internal/errors"
)

// respondError translates a domain error into the transport error body. The
// handlers never pick status codes themselves.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Message: httpErr.Message})
}

// actorFromContext extracts the authenticated actor stored by the JWT
// middleware on the secured route group.
func actorFromContext(c echo.Context) (auth.Actor, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return auth.Actor{}, apperrors.Auth("invalid token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return auth.Actor{}, apperrors.Auth("invalid token")
	}
	return auth.Actor{UserID: userID, Role: claims.Role}, nil
}
