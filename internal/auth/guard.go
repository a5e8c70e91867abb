package auth

import (
	"github.com/google/uuid"

	apperrors "greencart/internal/errors"
)

// Actor is the authenticated caller of a gated operation, as decoded from the
// session token.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// Require authorizes the actor against the given roles and returns a
// ForbiddenError on deny. Every role-gated operation goes through this guard.
func Require(actor Actor, roles ...string) error {
	for _, role := range roles {
		if actor.Role == role {
			return nil
		}
	}
	return apperrors.Forbidden("access denied")
}
