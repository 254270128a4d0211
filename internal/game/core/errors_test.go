package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsWrap(t *testing.T) {
	wrapped := fmt.Errorf("grid %s: %w", NewSize(0, 3), ErrInvalidSize)
	assert.True(t, errors.Is(wrapped, ErrInvalidSize))
	assert.False(t, errors.Is(wrapped, ErrInvalidCoordinates))
	assert.Equal(t, "grid 0x3: map dimensions must be positive", wrapped.Error())
}
