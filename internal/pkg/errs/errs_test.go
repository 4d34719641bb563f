package errs_test

import (
	"errors"
	"testing"

	"courierquote/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("town", "durban")

		assert.Equal(t, "town", err.ParamName)
		assert.Equal(t, "durban", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: durban", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("town table not loaded")
		err := errs.NewObjectNotFoundErrorWithCause("town", "george", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: town, ID is: george (cause: town table not loaded)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("service")

		assert.Equal(t, "value is invalid: service", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("service", errors.New("unknown service \"rail\""))

		assert.Equal(t, "value is invalid: service (cause: unknown service \"rail\")", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("road_surcharge", -1, 0, 10)

		assert.Equal(t, "value is invalid: -1 is road_surcharge, min value is 0, max value is 10", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("keeps value on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "cape\ntown", 0, 10)

		assert.Contains(t, err.Error(), "cape town")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("email", errors.New("empty"))

	assert.Equal(t, "value is required: email (cause: empty)", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("town", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("zone"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("fee", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
}
