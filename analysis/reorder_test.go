package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelfwise/models"
)

func TestCalculateReorderLevels(t *testing.T) {
	// 5 units/day over 30 days, 3-day lead time:
	// buffer = ceil(3*5*1.5) = 23, reorder = ceil(3*5)+23 = 38,
	// orderQty = ceil(5*14) = 70, max = 108.
	obs := []models.Observation{obsAt(20, 150), obsAt(0, 50)}

	levels := CalculateReorderLevels(obs, 3, analysisNow)

	assert.Equal(t, 23, levels.BufferStock)
	assert.Equal(t, 23, levels.MinimumStock)
	assert.Equal(t, 38, levels.ReorderLevel)
	assert.Equal(t, 108, levels.MaximumStock)
	assert.Equal(t, 3, levels.LeadTimeDays)
}

func TestCalculateReorderLevelsDefaults(t *testing.T) {
	levels := CalculateReorderLevels(nil, 5, analysisNow)

	assert.Equal(t, models.ReorderLevels{
		MaximumStock: 600,
		ReorderLevel: 300,
		MinimumStock: 100,
		BufferStock:  50,
		LeadTimeDays: 5,
	}, levels)
}

func TestCalculateReorderLevelsInvariant(t *testing.T) {
	cases := [][]models.Observation{
		nil,
		{obsAt(20, 150), obsAt(0, 50)},
		{obsAt(29, 1000), obsAt(0, 10)},
		{obsAt(10, 12), obsAt(0, 9)},
		{obsAt(3, 7), obsAt(0, 6)},
	}

	for _, obs := range cases {
		for _, lead := range []int{1, 3, 7, 14} {
			levels := CalculateReorderLevels(obs, lead, analysisNow)
			assert.LessOrEqual(t, levels.MinimumStock, levels.ReorderLevel)
			assert.LessOrEqual(t, levels.ReorderLevel, levels.MaximumStock)
			assert.Equal(t, levels.MinimumStock, levels.BufferStock)
		}
	}
}
