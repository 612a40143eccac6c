package costing

import (
	"math"
	"testing"

	"hyperion_estimating/internal/domain/entities"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

// testCatalog builds the fixture used across the package: two components
// with one tier each, plus an uncategorized component for fallback checks.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog(
		[]entities.Component{
			{ID: "comp-x", Name: "PDU rack unit", Category: entities.CategoryElectrical, Unit: "each", LaborHours: 1},
			{ID: "comp-y", Name: "CRAH unit", Category: entities.CategoryMechanical, Unit: "each", LaborHours: 3},
			{ID: "comp-z", Name: "Misc bracket", Unit: "each"},
		},
		[]entities.QualityTier{
			{ID: "tier-std", ComponentID: "comp-x", Name: "Standard", UnitCost: 50},
			{ID: "tier-prem", ComponentID: "comp-y", Name: "Premium", UnitCost: 200},
			{ID: "tier-basic", ComponentID: "comp-z", Name: "Basic", UnitCost: 10},
		},
	)
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	return cat
}

// scenarioLines is the Scenario-A line list: 2× comp-x at Standard, 1×
// comp-y at Premium.
func scenarioLines() []entities.AssemblyComponentLine {
	return []entities.AssemblyComponentLine{
		{ComponentID: "comp-x", TierID: "tier-std", Quantity: 2},
		{ComponentID: "comp-y", TierID: "tier-prem", Quantity: 1},
	}
}
