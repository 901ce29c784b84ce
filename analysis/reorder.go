package analysis

import (
	"math"
	"time"

	"shelfwise/models"
)

// Fallback thresholds used when there is no usable usage prediction. These
// are explicit labeled defaults, never a usage rate invented from no data.
const (
	defaultMaximumStock = 600
	defaultReorderLevel = 300
	defaultMinimumStock = 100
	defaultBufferStock  = 50
)

// reorderWindowDays is the predictor window used for reorder calculations.
const reorderWindowDays = 30

// safetyFactor pads the buffer stock above bare lead-time demand.
const safetyFactor = 1.5

// orderCoverDays is the fixed restock target: two weeks of usage per order.
const orderCoverDays = 14

// CalculateReorderLevels derives the stock thresholds for an item from its
// estimated daily usage and the supplier lead time. The invariant
// MinimumStock <= ReorderLevel <= MaximumStock always holds.
func CalculateReorderLevels(obs []models.Observation, leadTimeDays int, now time.Time) models.ReorderLevels {
	prediction := PredictStockOut(obs, reorderWindowDays, now)
	if prediction == nil {
		return models.ReorderLevels{
			MaximumStock: defaultMaximumStock,
			ReorderLevel: defaultReorderLevel,
			MinimumStock: defaultMinimumStock,
			BufferStock:  defaultBufferStock,
			LeadTimeDays: leadTimeDays,
		}
	}

	usage := prediction.EstimatedDailyUsage
	lead := float64(leadTimeDays)

	buffer := int(math.Ceil(lead * usage * safetyFactor))
	reorder := int(math.Ceil(lead*usage)) + buffer
	orderQty := int(math.Ceil(usage * orderCoverDays))

	return models.ReorderLevels{
		MaximumStock: reorder + orderQty,
		ReorderLevel: reorder,
		MinimumStock: buffer,
		BufferStock:  buffer,
		LeadTimeDays: leadTimeDays,
	}
}
