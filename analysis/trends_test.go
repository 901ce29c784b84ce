package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shelfwise/models"
)

var analysisNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func obsAt(daysAgo int, quantity int) models.Observation {
	return models.Observation{
		Quantity:   quantity,
		ObservedAt: analysisNow.AddDate(0, 0, -daysAgo),
	}
}

func TestAnalyzeStockLevelsHighDecline(t *testing.T) {
	// 100 -> 70 over the window: 30% decline, high risk, "low stock" bucket.
	obs := map[string][]models.Observation{
		"Rice Bags": {obsAt(7, 100), obsAt(0, 70)},
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Len(t, result.LowStockItems, 1)
	item := result.LowStockItems[0]
	assert.Equal(t, 30, item.DeclinePercentage)
	assert.Equal(t, models.RiskHigh, item.RiskLevel)
	assert.Equal(t, models.TrendDecreasing, item.Trend)
	assert.Empty(t, result.CriticalItems)
	assert.Empty(t, result.HealthyStockItems)
}

func TestAnalyzeStockLevelsCritical(t *testing.T) {
	obs := map[string][]models.Observation{
		"Milk": {obsAt(6, 80), obsAt(1, 30)}, // 62% decline
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Len(t, result.CriticalItems, 1)
	assert.Equal(t, models.RiskCritical, result.CriticalItems[0].RiskLevel)
	// Critical items never double-count into the low stock bucket.
	assert.Empty(t, result.LowStockItems)
}

func TestAnalyzeStockLevelsInsufficientData(t *testing.T) {
	obs := map[string][]models.Observation{
		"Lonely": {obsAt(2, 50)},
		"Stale":  {obsAt(20, 50), obsAt(15, 40)}, // both outside 7-day window
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Empty(t, result.LowStockItems)
	assert.Empty(t, result.HealthyStockItems)
	assert.Empty(t, result.CriticalItems)
}

func TestAnalyzeStockLevelsIncreasingIsHealthy(t *testing.T) {
	obs := map[string][]models.Observation{
		"Restocked": {obsAt(5, 40), obsAt(0, 90)},
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Len(t, result.HealthyStockItems, 1)
	item := result.HealthyStockItems[0]
	assert.Equal(t, models.TrendIncreasing, item.Trend)
	// With a non-zero previous quantity the decline goes negative on an
	// increase; only the grew-from-zero case floors at 0.
	assert.Equal(t, -125, item.DeclinePercentage)
}

func TestAnalyzeStockLevelsZeroFloorConvention(t *testing.T) {
	// Stock grew from zero: decline stays 0 while the trend still reads
	// increasing. The two computations are independent on purpose.
	obs := map[string][]models.Observation{
		"From Zero": {obsAt(4, 0), obsAt(0, 25)},
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Len(t, result.HealthyStockItems, 1)
	item := result.HealthyStockItems[0]
	assert.Equal(t, 0, item.DeclinePercentage)
	assert.Equal(t, models.TrendIncreasing, item.Trend)
}

func TestAnalyzeStockLevelsStableBand(t *testing.T) {
	// 100 -> 97 is a 3% change: inside the stable band.
	obs := map[string][]models.Observation{
		"Steady": {obsAt(6, 100), obsAt(0, 97)},
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Len(t, result.HealthyStockItems, 1)
	assert.Equal(t, models.TrendStable, result.HealthyStockItems[0].Trend)
	assert.Equal(t, models.RiskLow, result.HealthyStockItems[0].RiskLevel)
}

func TestAnalyzeStockLevelsZeroBucketItem(t *testing.T) {
	// 20% decline: medium risk and decreasing, so it belongs to no bucket.
	obs := map[string][]models.Observation{
		"Limbo": {obsAt(7, 100), obsAt(0, 80)},
	}

	result := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Empty(t, result.LowStockItems)
	assert.Empty(t, result.HealthyStockItems)
	assert.Empty(t, result.CriticalItems)
}

func TestAnalyzeStockLevelsDeterministic(t *testing.T) {
	obs := map[string][]models.Observation{
		"A": {obsAt(7, 100), obsAt(0, 70)},
		"B": {obsAt(7, 100), obsAt(0, 40)},
		"C": {obsAt(7, 50), obsAt(0, 52)},
	}

	first := AnalyzeStockLevels(obs, 7, analysisNow)
	second := AnalyzeStockLevels(obs, 7, analysisNow)

	assert.Equal(t, first, second)
}
