package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInclusiveDays(t *testing.T) {
	t.Run("SameDayIsOneDay", func(t *testing.T) {
		days, err := InclusiveDays("2026-09-01", "2026-09-01")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("CountsBothEndpoints", func(t *testing.T) {
		days, err := InclusiveDays("2026-09-01", "2026-09-03")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := InclusiveDays("2026-09-03", "2026-09-01")
		assert.Error(t, err)
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, err := InclusiveDays("09/01/2026", "2026-09-03")
		assert.Error(t, err)
	})
}

func TestRentalCostCents(t *testing.T) {
	t.Run("DailyRateTimesInclusiveDays", func(t *testing.T) {
		cost, err := RentalCostCents(1500, "2026-09-01", "2026-09-03")
		assert.NoError(t, err)
		assert.Equal(t, int32(4500), cost)
	})

	t.Run("SingleDay", func(t *testing.T) {
		cost, err := RentalCostCents(1500, "2026-09-01", "2026-09-01")
		assert.NoError(t, err)
		assert.Equal(t, int32(1500), cost)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		_, err := RentalCostCents(1500, "2026-09-03", "2026-09-01")
		assert.Error(t, err)
	})
}
