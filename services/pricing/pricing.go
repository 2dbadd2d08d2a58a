// Package pricing produces deterministic, itemized cost estimates per task
// category from a fixed rules table.
package pricing

import (
	"fixly/models"
	"fixly/utils"
)

// DefaultCategory is the explicit fallback policy: categories without a
// table price as plumbing jobs.
const DefaultCategory = models.CategoryPlumbing

type laborSpec struct {
	task       string
	hours      float64
	hourlyRate float64
}

type materialSpec struct {
	name      string
	quantity  float64
	unit      string
	unitPrice float64
}

type feeSpec struct {
	name        string
	description string
	amount      float64
}

type tableSpec struct {
	labor     []laborSpec
	materials []materialSpec
	fees      []feeSpec
}

var tables = map[string]tableSpec{
	models.CategoryPlumbing: {
		labor: []laborSpec{
			{"Diagnostic & assessment", 1.0, 85},
			{"Pipe repair & fitting", 2.5, 85},
			{"Testing & cleanup", 0.5, 85},
		},
		materials: []materialSpec{
			{"PVC pipe & fittings", 3, "pieces", 12.99},
			{"Shut-off valve", 1, "piece", 22.50},
			{"Pipe sealant", 1, "tube", 8.99},
		},
		fees: []feeSpec{
			{"Service call fee", "Standard dispatch and travel", 50},
			{"Disposal fee", "Haul-away of replaced parts", 25},
		},
	},
	models.CategoryElectrical: {
		labor: []laborSpec{
			{"Circuit diagnosis", 1.0, 90},
			{"Wiring & installation", 2.0, 90},
			{"Safety inspection", 0.5, 90},
		},
		materials: []materialSpec{
			{"Copper wiring", 25, "feet", 1.85},
			{"Outlet & switch hardware", 4, "pieces", 6.49},
			{"Junction box", 2, "pieces", 3.25},
		},
		fees: []feeSpec{
			{"Service call fee", "Standard dispatch and travel", 50},
			{"Permit fee", "Local electrical permit filing", 35},
		},
	},
	models.CategoryCarpentry: {
		labor: []laborSpec{
			{"Measurement & planning", 0.5, 70},
			{"Cutting & assembly", 3.0, 70},
			{"Finishing & touch-up", 1.0, 70},
		},
		materials: []materialSpec{
			{"Lumber", 6, "boards", 14.75},
			{"Wood screws & fasteners", 2, "boxes", 7.99},
			{"Wood glue & finish", 1, "kit", 18.50},
		},
		fees: []feeSpec{
			{"Service call fee", "Standard dispatch and travel", 50},
			{"Disposal fee", "Haul-away of scrap material", 25},
		},
	},
	models.CategoryAppliance: {
		labor: []laborSpec{
			{"Fault diagnosis", 1.0, 80},
			{"Part replacement", 1.5, 80},
			{"Function testing", 0.5, 80},
		},
		materials: []materialSpec{
			{"Replacement part", 1, "piece", 64.99},
			{"Hose & connector kit", 1, "kit", 19.95},
		},
		fees: []feeSpec{
			{"Service call fee", "Standard dispatch and travel", 50},
			{"Disposal fee", "Haul-away of defective parts", 25},
		},
	},
}

// ForCategory builds the breakdown for a task category. Unknown categories
// fall back to DefaultCategory.
func ForCategory(category string) models.PriceBreakdown {
	resolved := category
	spec, ok := tables[category]
	if !ok {
		resolved = DefaultCategory
		spec = tables[DefaultCategory]
	}

	b := models.PriceBreakdown{Category: resolved, Currency: utils.DefaultCurrency}

	for _, l := range spec.labor {
		total := l.hours * l.hourlyRate
		b.Labor = append(b.Labor, models.LaborItem{
			Task:       l.task,
			Hours:      l.hours,
			HourlyRate: l.hourlyRate,
			Total:      total,
		})
		b.LaborTotal += total
	}

	for _, m := range spec.materials {
		total := m.quantity * m.unitPrice
		b.Materials = append(b.Materials, models.MaterialItem{
			Name:      m.name,
			Quantity:  m.quantity,
			Unit:      m.unit,
			UnitPrice: m.unitPrice,
			Total:     total,
		})
		b.MaterialsTotal += total
	}

	for _, f := range spec.fees {
		b.Fees = append(b.Fees, models.FeeItem{
			Name:        f.name,
			Description: f.description,
			Amount:      f.amount,
		})
		b.FeesTotal += f.amount
	}

	b.TotalEstimate = b.LaborTotal + b.MaterialsTotal + b.FeesTotal
	return b
}

// Convert rescales every amount in a breakdown to the target currency.
// Unknown currencies leave the amounts unchanged.
func Convert(b models.PriceBreakdown, currency string) models.PriceBreakdown {
	conv := func(v float64) float64 {
		return utils.ConvertAmount(v, b.Currency, currency)
	}

	out := b
	out.Currency = currency
	out.Labor = make([]models.LaborItem, len(b.Labor))
	for i, l := range b.Labor {
		l.HourlyRate = conv(l.HourlyRate)
		l.Total = conv(l.Total)
		out.Labor[i] = l
	}
	out.Materials = make([]models.MaterialItem, len(b.Materials))
	for i, m := range b.Materials {
		m.UnitPrice = conv(m.UnitPrice)
		m.Total = conv(m.Total)
		out.Materials[i] = m
	}
	out.Fees = make([]models.FeeItem, len(b.Fees))
	for i, f := range b.Fees {
		f.Amount = conv(f.Amount)
		out.Fees[i] = f
	}
	out.LaborTotal = conv(b.LaborTotal)
	out.MaterialsTotal = conv(b.MaterialsTotal)
	out.FeesTotal = conv(b.FeesTotal)
	out.TotalEstimate = conv(b.TotalEstimate)
	return out
}

// Categories returns the categories with a dedicated pricing table.
func Categories() []string {
	return models.TaskCategories
}
