package analysis

import (
	"math"
	"sort"
	"time"

	"shelfwise/models"
)

// Thresholds for trend and risk classification, in percent.
const (
	stableBandPercent     = 5
	riskMediumThreshold   = 15
	riskHighThreshold     = 30
	riskCriticalThreshold = 50
)

// observationsInWindow returns the observations within [now-windowDays, now],
// sorted ascending by observation time. The input slice is not modified.
func observationsInWindow(obs []models.Observation, windowDays int, now time.Time) []models.Observation {
	cutoff := now.AddDate(0, 0, -windowDays)

	in := make([]models.Observation, 0, len(obs))
	for _, o := range obs {
		if !o.ObservedAt.Before(cutoff) && !o.ObservedAt.After(now) {
			in = append(in, o)
		}
	}

	sort.SliceStable(in, func(i, j int) bool {
		return in[i].ObservedAt.Before(in[j].ObservedAt)
	})
	return in
}

// AnalyzeStockLevels classifies every item with at least two observations in
// the window into risk buckets. Items with fewer than two observations are a
// legitimate "no opinion" state and appear in no bucket.
//
// Items are processed in name order so repeated calls on identical input
// produce identical output.
func AnalyzeStockLevels(obsByItem map[string][]models.Observation, windowDays int, now time.Time) models.StockAnalysis {
	result := models.StockAnalysis{
		LowStockItems:     make([]models.StockTrend, 0),
		HealthyStockItems: make([]models.StockTrend, 0),
		CriticalItems:     make([]models.StockTrend, 0),
	}

	names := make([]string, 0, len(obsByItem))
	for name := range obsByItem {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		in := observationsInWindow(obsByItem[name], windowDays, now)
		if len(in) < 2 {
			continue
		}

		previous := in[0].Quantity
		current := in[len(in)-1].Quantity

		// Decline percentage is floored at zero when stock grew from zero;
		// the trend classifier below uses the raw percent change instead.
		// The two are deliberately kept as independent computations.
		decline := 0
		if previous > 0 {
			decline = int(math.Round(float64(previous-current) / float64(previous) * 100))
		}

		rawChange := 0.0
		if previous > 0 {
			rawChange = float64(current-previous) / float64(previous) * 100
		} else if current > 0 {
			rawChange = 100
		}

		trend := models.TrendStable
		if math.Abs(rawChange) >= stableBandPercent {
			if current > previous {
				trend = models.TrendIncreasing
			} else {
				trend = models.TrendDecreasing
			}
		}

		risk := models.RiskLow
		switch {
		case decline >= riskCriticalThreshold:
			risk = models.RiskCritical
		case decline >= riskHighThreshold:
			risk = models.RiskHigh
		case decline >= riskMediumThreshold:
			risk = models.RiskMedium
		}

		st := models.StockTrend{
			ItemName:          name,
			CurrentQuantity:   current,
			PreviousQuantity:  previous,
			DeclinePercentage: decline,
			Trend:             trend,
			RiskLevel:         risk,
		}

		// An item can land in zero buckets, e.g. medium risk and decreasing.
		if risk == models.RiskCritical {
			result.CriticalItems = append(result.CriticalItems, st)
		}
		if decline >= riskHighThreshold && risk != models.RiskCritical {
			result.LowStockItems = append(result.LowStockItems, st)
		}
		if risk == models.RiskLow || trend == models.TrendIncreasing {
			result.HealthyStockItems = append(result.HealthyStockItems, st)
		}
	}

	return result
}
