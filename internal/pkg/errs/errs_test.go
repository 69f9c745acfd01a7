package errs_test

import (
	"errors"
	"testing"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "42", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 42 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("multi\nline")
		assert.Contains(t, err.Error(), "multi line")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
	})
}

func TestActionIsForbiddenError(t *testing.T) {
	t.Run("NewActionIsForbiddenError", func(t *testing.T) {
		err := errs.NewActionIsForbiddenError("place order")

		assert.Equal(t, "place order", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "action is forbidden: place order", err.Error())
		assert.Equal(t, errs.ErrActionIsForbidden, err.Unwrap())
	})

	t.Run("NewActionIsForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("ordering is closed for user")
		err := errs.NewActionIsForbiddenErrorWithCause("place order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "action is forbidden: place order (cause: ordering is closed for user)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("active order")

		assert.Equal(t, "active order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: active order", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestTransientError(t *testing.T) {
	t.Run("NewTransientErrorWithCause", func(t *testing.T) {
		cause := errors.New("lock wait timeout")
		err := errs.NewTransientErrorWithCause("commit order", cause)

		assert.Equal(t, "commit order", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "transient failure: commit order (cause: lock wait timeout)", err.Error())
		assert.Equal(t, errs.ErrTransient, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "action is forbidden", errs.ErrActionIsForbidden.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "transient failure", errs.ErrTransient.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewActionIsForbiddenError("collect order"), errs.ErrActionIsForbidden)
		require.ErrorIs(t, errs.NewConflictError("active order"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewTransientError("commit"), errs.ErrTransient)
	})
}
