package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("WrapsErrorWithMessage", func(t *testing.T) {
		err := Wrap(ErrNotFound, "record lookup failed")
		assert.EqualError(t, err, "record lookup failed: not found")
		assert.True(t, Is(err, ErrNotFound))
	})

	t.Run("NilErrorReturnsNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "ignored"))
	})

	t.Run("PreservesChainAcrossLayers", func(t *testing.T) {
		inner := Wrap(ErrUnavailable, "dsm request failed")
		outer := Wrap(inner, "tokenize record")
		assert.True(t, Is(outer, ErrUnavailable))
		assert.EqualError(t, outer, "tokenize record: dsm request failed: unavailable")
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrConfiguration)
	assert.True(t, Is(err, ErrConfiguration))
	assert.False(t, Is(err, ErrUnauthorized))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrInvalidInput,
		ErrUnauthorized,
		ErrForbidden,
		ErrConfiguration,
		ErrUnavailable,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %v should not match %v", a, b)
		}
	}
}
