package guard_test

import (
	"errors"
	"testing"

	"courierquote/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("tariff not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuardUsage(t *testing.T) {
	type rate struct {
		perKg int
		guard guard.ConstructorGuard
	}
	errRateNotConstructed := errors.New("rate must be created via newRate")
	newRate := func(perKg int) rate {
		return rate{perKg: perKg, guard: guard.NewConstructorGuard()}
	}

	built := newRate(60)
	var zero rate

	require.NoError(t, built.guard.Validate(errRateNotConstructed))
	require.ErrorIs(t, zero.guard.Validate(errRateNotConstructed), errRateNotConstructed)
}
