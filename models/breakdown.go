package models

// LaborItem is one line of labor in a price breakdown.
type LaborItem struct {
	Task       string  `json:"task"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourlyRate"`
	Total      float64 `json:"total"`
}

// MaterialItem is one line of materials in a price breakdown.
type MaterialItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// FeeItem is a flat fee in a price breakdown.
type FeeItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PriceBreakdown is an itemized labor/materials/fees estimate for a task
// category. Amounts are USD base units; display conversion happens elsewhere.
type PriceBreakdown struct {
	Category       string         `json:"category"`
	Currency       string         `json:"currency"`
	Labor          []LaborItem    `json:"labor"`
	Materials      []MaterialItem `json:"materials"`
	Fees           []FeeItem      `json:"fees"`
	LaborTotal     float64        `json:"laborTotal"`
	MaterialsTotal float64        `json:"materialsTotal"`
	FeesTotal      float64        `json:"feesTotal"`
	TotalEstimate  float64        `json:"totalEstimate"`
}
