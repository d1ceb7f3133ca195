package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("athlete %d not found", 7), KindNotFound},
		{"wrapped conflict", fmt.Errorf("generate: %w", Conflict("lineup exists")), KindConflict},
		{"validation", Validation("category is required"), KindValidation},
		{"plain error", errors.New("connection refused"), KindUnexpected},
		{"unexpected", Unexpected("failed to load", errors.New("boom")), KindUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("event %d not found", 3))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestUnexpectedUnwraps(t *testing.T) {
	cause := errors.New("db down")
	err := Unexpected("failed to save score", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save score: db down", err.Error())
}
