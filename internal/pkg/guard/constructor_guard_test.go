package guard_test

import (
	"errors"
	"testing"

	"exportflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value guard fails with given error", func(t *testing.T) {
		var g guard.ConstructorGuard
		errCustom := errors.New("object not constructed")
		assert.Equal(t, errCustom, g.Validate(errCustom))
	})

	t.Run("zero value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}
