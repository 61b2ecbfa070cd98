package guard_test

import (
	"errors"
	"testing"

	"tours/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("query must be created via its constructor")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueType(t *testing.T) {
	type listToursQuery struct {
		country string
		guard   guard.ConstructorGuard
	}
	errNotConstructed := errors.New("listToursQuery must be created via newListToursQuery")

	newListToursQuery := func(country string) listToursQuery {
		return listToursQuery{country: country, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructor_sets_guard", func(t *testing.T) {
		q := newListToursQuery("Ghana")

		require.NoError(t, q.guard.Validate(errNotConstructed))
		assert.Equal(t, "Ghana", q.country)
	})

	t.Run("literal_bypasses_constructor", func(t *testing.T) {
		q := listToursQuery{country: "Ghana"}

		assert.Equal(t, errNotConstructed, q.guard.Validate(errNotConstructed))
	})
}
