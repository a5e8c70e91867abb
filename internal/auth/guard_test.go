package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "greencart/internal/errors"
)

func TestRequire(t *testing.T) {
	actor := Actor{UserID: uuid.New(), Role: "producer"}

	assert.NoError(t, Require(actor, "producer"))
	assert.NoError(t, Require(actor, "producer", "admin"))
	assert.NoError(t, Require(actor, "admin", "producer"))

	err := Require(actor, "consumer")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	err = Require(actor)
	assert.Error(t, err)
}
