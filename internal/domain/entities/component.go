package entities

import "time"

// Category classifies a component into a construction discipline.
//
// Domain notes:
//   - The enumeration is open: catalogs may introduce new disciplines at any
//     time, so Category is a typed string rather than a closed set.
//   - CategoryGeneral is the fallback for genuinely uncategorized components;
//     downstream aggregation never guesses a category from names.

type Category string

const (
	CategoryElectrical Category = "electrical"
	CategoryMechanical Category = "mechanical"
	CategoryCooling    Category = "cooling"
	CategoryStructural Category = "structural"
	CategoryNetwork    Category = "network"
	CategoryGeneral    Category = "general"
)

// Component is a purchasable material or labor item in the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Pricing:
//   - A component carries no price itself; pricing comes from its quality
//     tiers. LaborHours is hours of installation labor per unit, 0 when the
//     component needs none.
//   - Metadata is an open key/value side-channel for technical specs
//     (power, cooling, dimensions); it never participates in costing.

type Component struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   Category          `json:"category"`
	Unit       string            `json:"unit"`
	LaborHours float64           `json:"labor_hours"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// QualityTier is a priced variant of a Component (e.g. Basic/Standard/Premium).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (component_id-index): component_id
//
// Invariants:
//   - UnitCost is strictly positive.
//   - ComponentID references an existing component; an estimate line selects
//     exactly one tier and that tier must belong to the line's component.

type QualityTier struct {
	ID          string    `json:"id"`
	ComponentID string    `json:"component_id"`
	Name        string    `json:"name"`
	UnitCost    float64   `json:"unit_cost"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
