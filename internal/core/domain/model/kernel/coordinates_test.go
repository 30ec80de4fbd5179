package kernel_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("should create coordinates within bounds", func(t *testing.T) {
		c, err := kernel.NewCoordinates(32.0853, 34.7818)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.InDelta(t, 32.0853, c.Lat(), 1e-9)
		assert.InDelta(t, 34.7818, c.Lng(), 1e-9)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		_, err := kernel.NewCoordinates(kernel.MinLatitude, kernel.MaxLongitude)
		require.NoError(t, err)

		_, err = kernel.NewCoordinates(kernel.MaxLatitude, kernel.MinLongitude)
		require.NoError(t, err)
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinates(91, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "lat")
	})

	t.Run("should report both invalid coordinates", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
		assert.Contains(t, err.Error(), "lng")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var c kernel.Coordinates

		require.ErrorIs(t, c.Validate(), errs.ErrValueIsRequired)
	})
}

func TestAddress(t *testing.T) {
	t.Run("should trim and expose fields", func(t *testing.T) {
		coords, _ := kernel.NewCoordinates(1, 2)

		a := kernel.NewAddress("  12 Herzl St ", " Tel Aviv ", &coords)

		assert.Equal(t, "12 Herzl St", a.Line())
		assert.Equal(t, "Tel Aviv", a.City())
		assert.Equal(t, "12 Herzl St, Tel Aviv", a.String())
		require.NotNil(t, a.Coordinates())
		assert.True(t, a.Coordinates().IsEqual(coords))
		assert.False(t, a.IsEmpty())
	})

	t.Run("should report empty line", func(t *testing.T) {
		a := kernel.NewAddress("   ", "Haifa", nil)

		assert.True(t, a.IsEmpty())
		assert.Nil(t, a.Coordinates())
	})
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, at, kernel.FixedClock(at).Now())
}
