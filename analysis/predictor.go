package analysis

import (
	"math"
	"time"

	"shelfwise/models"
)

// PredictStockOut estimates when an item runs out, using only the earliest
// and latest observation inside the window. Returns nil when there is not
// enough data, when stock is flat or increasing, or when the item is already
// out. Callers treat nil as "no prediction", not as an error.
func PredictStockOut(obs []models.Observation, windowDays int, now time.Time) *models.StockOutPrediction {
	in := observationsInWindow(obs, windowDays, now)
	if len(in) < 2 {
		return nil
	}

	first := in[0]
	last := in[len(in)-1]

	days := last.ObservedAt.Sub(first.ObservedAt).Hours() / 24
	if days < 1 {
		days = 1
	}

	dailyUsage := float64(first.Quantity-last.Quantity) / days
	if dailyUsage <= 0 || last.Quantity <= 0 {
		return nil
	}

	daysUntil := int(math.Ceil(float64(last.Quantity) / dailyUsage))

	return &models.StockOutPrediction{
		CurrentQuantity:       last.Quantity,
		EstimatedDailyUsage:   math.Round(dailyUsage*10) / 10,
		DaysUntilStockOut:     daysUntil,
		EstimatedStockOutDate: now.AddDate(0, 0, daysUntil).Format("2006-01-02"),
	}
}
