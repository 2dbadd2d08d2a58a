package pricing

import (
	"math"
	"testing"

	"fixly/models"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-6
}

func TestPlumbingBreakdown(t *testing.T) {
	b := ForCategory(models.CategoryPlumbing)

	if !approx(b.LaborTotal, 340.00) {
		t.Errorf("labor total = %.2f, want 340.00", b.LaborTotal)
	}
	if !approx(b.MaterialsTotal, 70.46) {
		t.Errorf("materials total = %.2f, want 70.46", b.MaterialsTotal)
	}
	if !approx(b.FeesTotal, 75.00) {
		t.Errorf("fees total = %.2f, want 75.00", b.FeesTotal)
	}
	if !approx(b.TotalEstimate, 485.46) {
		t.Errorf("total = %.2f, want 485.46", b.TotalEstimate)
	}
	if b.Currency != "USD" {
		t.Errorf("currency = %q, want USD", b.Currency)
	}
}

func TestLineItemTotalsAreConsistent(t *testing.T) {
	for _, category := range Categories() {
		b := ForCategory(category)

		var labor float64
		for _, l := range b.Labor {
			if !approx(l.Total, l.Hours*l.HourlyRate) {
				t.Errorf("%s: labor line %q total %.2f != %.1f x %.2f",
					category, l.Task, l.Total, l.Hours, l.HourlyRate)
			}
			labor += l.Total
		}
		if !approx(labor, b.LaborTotal) {
			t.Errorf("%s: labor subtotal mismatch", category)
		}

		var materials float64
		for _, m := range b.Materials {
			if !approx(m.Total, m.Quantity*m.UnitPrice) {
				t.Errorf("%s: material line %q total mismatch", category, m.Name)
			}
			materials += m.Total
		}
		if !approx(materials, b.MaterialsTotal) {
			t.Errorf("%s: materials subtotal mismatch", category)
		}

		var fees float64
		for _, f := range b.Fees {
			fees += f.Amount
		}
		if !approx(fees, b.FeesTotal) {
			t.Errorf("%s: fees subtotal mismatch", category)
		}

		if !approx(b.TotalEstimate, labor+materials+fees) {
			t.Errorf("%s: grand total mismatch", category)
		}
	}
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	b := ForCategory("roofing")
	if b.Category != DefaultCategory {
		t.Errorf("resolved category = %q, want %q", b.Category, DefaultCategory)
	}
	ref := ForCategory(models.CategoryPlumbing)
	if !approx(b.TotalEstimate, ref.TotalEstimate) {
		t.Error("fallback breakdown should price as the default category")
	}
}

func TestEveryCategoryHasATable(t *testing.T) {
	for _, category := range Categories() {
		b := ForCategory(category)
		if b.Category != category {
			t.Errorf("category %q resolved to %q", category, b.Category)
		}
		if len(b.Labor) == 0 || len(b.Materials) == 0 || len(b.Fees) == 0 {
			t.Errorf("category %q has an incomplete table", category)
		}
		if b.TotalEstimate <= 0 {
			t.Errorf("category %q has a non-positive total", category)
		}
	}
}

func TestConvert(t *testing.T) {
	usd := ForCategory(models.CategoryPlumbing)
	inr := Convert(usd, "INR")

	if inr.Currency != "INR" {
		t.Errorf("currency = %q, want INR", inr.Currency)
	}
	if !approx(inr.TotalEstimate, usd.TotalEstimate*83.12) {
		t.Errorf("converted total = %.2f, want %.2f", inr.TotalEstimate, usd.TotalEstimate*83.12)
	}
	if !approx(inr.Labor[0].HourlyRate, usd.Labor[0].HourlyRate*83.12) {
		t.Error("line-item amounts should be converted too")
	}
	// Source untouched.
	if usd.Currency != "USD" || !approx(usd.LaborTotal, 340.00) {
		t.Error("Convert should not mutate its input")
	}
}
