package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelfwise/models"
)

func predictedPoints(c models.PredictiveCurve) []models.PredictiveDataPoint {
	out := make([]models.PredictiveDataPoint, 0, len(c.Data))
	for _, p := range c.Data {
		if p.IsPredicted {
			out = append(out, p)
		}
	}
	return out
}

func TestGeneratePredictiveCurveNoTrigger(t *testing.T) {
	// Usage of 1/day against a reorder level of 8: the 30-day simulation
	// never reaches the trigger, so the predicted portion is exactly 30
	// plain declining points.
	obs := []models.Observation{obsAt(20, 120), obsAt(0, 100)}

	curve := GeneratePredictiveCurve(obs, 30, 3, analysisNow)

	predicted := predictedPoints(curve)
	assert.Len(t, predicted, 30)
	for _, p := range predicted {
		assert.False(t, p.IsReorderPoint)
		assert.Nil(t, p.DaysUntilDelivery)
	}
	assert.Equal(t, 99, predicted[0].Quantity)
	assert.Equal(t, 70, predicted[29].Quantity)
}

func TestGeneratePredictiveCurveHistoryTagging(t *testing.T) {
	obs := []models.Observation{obsAt(20, 120), obsAt(0, 100)}

	curve := GeneratePredictiveCurve(obs, 30, 3, analysisNow)

	assert.False(t, curve.Data[0].IsPredicted)
	assert.False(t, curve.Data[1].IsPredicted)
	assert.Equal(t, 120, curve.Data[0].Quantity)
	assert.Equal(t, 100, curve.Data[1].Quantity)
}

func TestGeneratePredictiveCurveSawtooth(t *testing.T) {
	// Usage 10/day, reorder 75, minimum 45, maximum 215. The quantity hits
	// the trigger band at 70, declines through a 3-day lead time, then
	// snaps back to maximum stock.
	obs := []models.Observation{obsAt(10, 300), obsAt(0, 200)}

	curve := GeneratePredictiveCurve(obs, 30, 3, analysisNow)

	assert.Equal(t, 75, curve.ReorderLevels.ReorderLevel)
	assert.Equal(t, 45, curve.ReorderLevels.MinimumStock)
	assert.Equal(t, 215, curve.ReorderLevels.MaximumStock)

	predicted := predictedPoints(curve)
	assert.Len(t, predicted, 30)

	// Days 1-12: normal decline from 190 down to 80.
	assert.Equal(t, 190, predicted[0].Quantity)
	assert.Equal(t, 80, predicted[11].Quantity)

	// Days 13-15: lead-time countdown 3, 2, 1 while stock keeps falling.
	for i, want := range []int{3, 2, 1} {
		p := predicted[12+i]
		assert.NotNil(t, p.DaysUntilDelivery)
		assert.Equal(t, want, *p.DaysUntilDelivery)
	}
	assert.Equal(t, 70, predicted[12].Quantity)
	assert.Equal(t, 50, predicted[14].Quantity)

	// Day 16: instantaneous restock to maximum.
	restock := predicted[15]
	assert.True(t, restock.IsReorderPoint)
	assert.Equal(t, 215, restock.Quantity)

	// The sawtooth resumes its decline after the restock.
	assert.Equal(t, 205, predicted[16].Quantity)
}

func TestGeneratePredictiveCurveNoHistory(t *testing.T) {
	// With no observations the simulation starts from a full shelf at the
	// default thresholds and the default usage rate.
	curve := GeneratePredictiveCurve(nil, 10, 3, analysisNow)

	assert.Equal(t, 600, curve.ReorderLevels.MaximumStock)
	predicted := predictedPoints(curve)
	assert.Len(t, predicted, 10)
	assert.Len(t, curve.Data, 10)
	assert.Equal(t, 590, predicted[0].Quantity)
}

func TestGeneratePredictiveCurveClampsAtMinimum(t *testing.T) {
	// Heavy usage with a low starting quantity: once the floor is reached
	// the curve flat-lines at minimum stock rather than going negative.
	obs := []models.Observation{obsAt(20, 600), obsAt(0, 100)}

	curve := GeneratePredictiveCurve(obs, 15, 3, analysisNow)

	min := curve.ReorderLevels.MinimumStock
	for _, p := range predictedPoints(curve) {
		assert.GreaterOrEqual(t, p.Quantity, min)
	}
}

func TestGeneratePredictiveCurveDeterministic(t *testing.T) {
	obs := []models.Observation{obsAt(10, 300), obsAt(0, 200)}

	first := GeneratePredictiveCurve(obs, 30, 3, analysisNow)
	second := GeneratePredictiveCurve(obs, 30, 3, analysisNow)

	assert.Equal(t, first, second)
}
