package analysis

import (
	"math"
	"time"

	"shelfwise/models"
)

// curveHistoryDays bounds the historical portion of the curve.
const curveHistoryDays = 30

// defaultDailyUsage drives the simulation when no usage prediction exists.
const defaultDailyUsage = 10.0

const dateLayout = "2006-01-02"

// GeneratePredictiveCurve extends the observation history with a synthetic
// future series. The simulation runs one day at a time through three regimes:
// normal decline (clamped at minimum stock), a lead-time countdown once the
// quantity falls to the reorder level, and an instantaneous restock back to
// maximum stock. Every emitted predicted point consumes exactly one simulated
// day, so the predicted portion always holds daysForward points.
func GeneratePredictiveCurve(obs []models.Observation, daysForward, leadTimeDays int, now time.Time) models.PredictiveCurve {
	levels := CalculateReorderLevels(obs, leadTimeDays, now)

	history := observationsInWindow(obs, curveHistoryDays, now)
	data := make([]models.PredictiveDataPoint, 0, len(history)+daysForward)
	for _, o := range history {
		data = append(data, models.PredictiveDataPoint{
			Date:        o.ObservedAt.Format(dateLayout),
			Quantity:    o.Quantity,
			IsPredicted: false,
		})
	}

	usage := defaultDailyUsage
	if p := PredictStockOut(obs, curveHistoryDays, now); p != nil {
		usage = p.EstimatedDailyUsage
	}

	// Simulation starts from the last known point, or from a full shelf at
	// now when there is no history at all.
	qty := float64(levels.MaximumStock)
	date := now
	if len(history) > 0 {
		lastObs := history[len(history)-1]
		qty = float64(lastObs.Quantity)
		date = lastObs.ObservedAt
	}

	minStock := float64(levels.MinimumStock)
	reorder := float64(levels.ReorderLevel)

	day := 0
	for day < daysForward {
		day++
		date = date.AddDate(0, 0, 1)
		qty -= usage
		if qty < minStock {
			qty = minStock
		}

		if qty > reorder || qty <= minStock {
			// Normal decline, flat-lining at minimum stock once reached.
			data = append(data, models.PredictiveDataPoint{
				Date:        date.Format(dateLayout),
				Quantity:    int(math.Round(qty)),
				IsPredicted: true,
			})
			continue
		}

		// Reorder trigger: the order is placed now and arrives after the
		// lead time. Stock keeps declining while waiting for delivery.
		for d := 0; d < leadTimeDays; d++ {
			if d > 0 {
				if day >= daysForward {
					break
				}
				day++
				date = date.AddDate(0, 0, 1)
				qty -= usage
				if qty < minStock {
					qty = minStock
				}
			}
			remaining := leadTimeDays - d
			data = append(data, models.PredictiveDataPoint{
				Date:              date.Format(dateLayout),
				Quantity:          int(math.Round(qty)),
				IsPredicted:       true,
				DaysUntilDelivery: &remaining,
			})
		}

		// Delivery lands: instantaneous restock to maximum.
		if day < daysForward {
			day++
			date = date.AddDate(0, 0, 1)
			qty = float64(levels.MaximumStock)
			data = append(data, models.PredictiveDataPoint{
				Date:           date.Format(dateLayout),
				Quantity:       levels.MaximumStock,
				IsPredicted:    true,
				IsReorderPoint: true,
			})
		}
	}

	return models.PredictiveCurve{Data: data, ReorderLevels: levels}
}
