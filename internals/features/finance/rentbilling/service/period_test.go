package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentalku_backend/internals/features/finance/rentbilling/service"
)

func TestComputePeriod(t *testing.T) {
	t.Run("leap year february", func(t *testing.T) {
		start, end, err := service.ComputePeriod(2024, 2)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("non-leap february", func(t *testing.T) {
		_, end, err := service.ComputePeriod(2025, 2)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("thirty day month", func(t *testing.T) {
		start, end, err := service.ComputePeriod(2025, 6)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("december", func(t *testing.T) {
		_, end, err := service.ComputePeriod(2025, 12)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, _, err := service.ComputePeriod(2025, 13)
		assert.Error(t, err)
		_, _, err = service.ComputePeriod(2025, 0)
		assert.Error(t, err)
	})

	t.Run("year out of range", func(t *testing.T) {
		_, _, err := service.ComputePeriod(1999, 1)
		assert.Error(t, err)
	})
}

func TestComputeDueDate(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	due, err := service.ComputeDueDate(base, 7)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC), due)

	// crosses the month boundary
	due, err = service.ComputeDueDate(time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), due)

	// non-positive offsets are configuration errors
	_, err = service.ComputeDueDate(base, 0)
	assert.Error(t, err)
	_, err = service.ComputeDueDate(base, -3)
	assert.Error(t, err)
}
