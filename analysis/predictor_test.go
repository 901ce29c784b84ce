package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shelfwise/models"
)

func TestPredictStockOut(t *testing.T) {
	obs := []models.Observation{obsAt(10, 100), obsAt(0, 50)}

	p := PredictStockOut(obs, 14, analysisNow)

	assert.NotNil(t, p)
	assert.Equal(t, 5.0, p.EstimatedDailyUsage)
	assert.Equal(t, 10, p.DaysUntilStockOut)
	assert.Equal(t, 50, p.CurrentQuantity)
	assert.Equal(t, analysisNow.AddDate(0, 0, 10).Format("2006-01-02"), p.EstimatedStockOutDate)
}

func TestPredictStockOutUsesWindowEndpointsOnly(t *testing.T) {
	// The middle spike must not influence the estimate: only the earliest
	// and latest observations in the window count.
	obs := []models.Observation{obsAt(10, 100), obsAt(5, 500), obsAt(0, 50)}

	p := PredictStockOut(obs, 14, analysisNow)

	assert.NotNil(t, p)
	assert.Equal(t, 5.0, p.EstimatedDailyUsage)
}

func TestPredictStockOutNilCases(t *testing.T) {
	tests := []struct {
		name string
		obs  []models.Observation
	}{
		{"no observations", nil},
		{"single observation", []models.Observation{obsAt(3, 40)}},
		{"flat stock", []models.Observation{obsAt(10, 50), obsAt(0, 50)}},
		{"increasing stock", []models.Observation{obsAt(10, 50), obsAt(0, 80)}},
		{"already out", []models.Observation{obsAt(10, 50), obsAt(0, 0)}},
		{"all outside window", []models.Observation{obsAt(40, 100), obsAt(30, 50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, PredictStockOut(tt.obs, 14, analysisNow))
		})
	}
}

func TestPredictStockOutSameDayObservations(t *testing.T) {
	// Two counts hours apart clamp the elapsed time to one day instead of
	// exploding the usage rate.
	obs := []models.Observation{
		{Quantity: 100, ObservedAt: analysisNow.Add(-6 * time.Hour)},
		{Quantity: 90, ObservedAt: analysisNow},
	}

	p := PredictStockOut(obs, 14, analysisNow)

	assert.NotNil(t, p)
	assert.Equal(t, 10.0, p.EstimatedDailyUsage)
}

func TestPredictStockOutDeterministic(t *testing.T) {
	obs := []models.Observation{obsAt(12, 90), obsAt(6, 60), obsAt(0, 33)}

	assert.Equal(t, PredictStockOut(obs, 14, analysisNow), PredictStockOut(obs, 14, analysisNow))
}
