package models

// ParsedItem is one structured line extracted from an AI shelf description.
// Ephemeral: consumed immediately by the observation upsert.
type ParsedItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Trend direction of an item's stock level within the analysis window.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Risk classification derived from the decline percentage.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// StockTrend is the per-item result of the trend analyzer. Derived on every
// call, never persisted.
type StockTrend struct {
	ItemName          string `json:"item_name"`
	CurrentQuantity   int    `json:"current_quantity"`
	PreviousQuantity  int    `json:"previous_quantity"`
	DeclinePercentage int    `json:"decline_percentage"`
	Trend             string `json:"trend"`
	RiskLevel         string `json:"risk_level"`
}

// StockAnalysis buckets items by how urgently they need attention. An item
// with too little data appears in no bucket at all.
type StockAnalysis struct {
	LowStockItems     []StockTrend `json:"low_stock_items"`
	HealthyStockItems []StockTrend `json:"healthy_stock_items"`
	CriticalItems     []StockTrend `json:"critical_items"`
}

// StockOutPrediction projects when an item runs out at the current usage rate.
type StockOutPrediction struct {
	CurrentQuantity       int     `json:"current_quantity"`
	EstimatedDailyUsage   float64 `json:"estimated_daily_usage"`
	DaysUntilStockOut     int     `json:"days_until_stock_out"`
	EstimatedStockOutDate string  `json:"estimated_stock_out_date"`
}

// ReorderLevels are the stock thresholds derived from usage rate and supplier
// lead time. BufferStock always equals MinimumStock by construction.
type ReorderLevels struct {
	MaximumStock int `json:"maximum_stock"`
	ReorderLevel int `json:"reorder_level"`
	MinimumStock int `json:"minimum_stock"`
	BufferStock  int `json:"buffer_stock"`
	LeadTimeDays int `json:"lead_time_days"`
}

// PredictiveDataPoint is one point of the predictive chart series. Historical
// points carry IsPredicted=false; synthetic future points carry true.
type PredictiveDataPoint struct {
	Date              string `json:"date"`
	Quantity          int    `json:"quantity"`
	IsPredicted       bool   `json:"is_predicted"`
	IsReorderPoint    bool   `json:"is_reorder_point,omitempty"`
	DaysUntilDelivery *int   `json:"days_until_delivery,omitempty"`
}

// PredictiveCurve is the full chart payload: the mixed historical/predicted
// series plus the thresholds it was simulated against.
type PredictiveCurve struct {
	Data          []PredictiveDataPoint `json:"data"`
	ReorderLevels ReorderLevels         `json:"reorder_levels"`
}
