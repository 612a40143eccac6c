package entities

import "time"

// EstimateKind distinguishes the two mutually exclusive estimate
// representations. An estimate never mixes them.

type EstimateKind string

const (
	// EstimateKindFlat prices component+tier lines directly (legacy form).
	EstimateKindFlat EstimateKind = "flat"
	// EstimateKindHierarchical prices assembly references with a multiplier.
	EstimateKindHierarchical EstimateKind = "hierarchical"
)

// EstimateLine is one flat row priced directly against a component and a
// selected quality tier.
//
// TotalCost = tier.UnitCost × Quantity, computed from the catalog when the
// line is appended and refreshed whenever the estimate is recomputed.

type EstimateLine struct {
	ID          string  `json:"id"`
	ComponentID string  `json:"component_id"`
	TierID      string  `json:"tier_id"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	TotalCost   float64 `json:"total_cost"`
}

// EstimateAssemblyLine is one hierarchical row: an assembly repeated
// Quantity times (integer multiplier ≥ 1).
//
// The derived totals are the assembly's recomputed totals scaled by the
// multiplier, frozen at append time and refreshed on recomputation.

type EstimateAssemblyLine struct {
	ID                string  `json:"id"`
	AssemblyID        string  `json:"assembly_id"`
	Quantity          int     `json:"quantity"`
	TotalMaterialCost float64 `json:"total_material_cost"`
	TotalLaborCost    float64 `json:"total_labor_cost"`
	TotalLaborHours   float64 `json:"total_labor_hours"`
}

// Estimate is the top-level priced artifact.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//   - Lines are embedded in the item, so deleting the estimate cascades to
//     its lines in a single delete.
//
// Invariants:
//   - Exactly one of Lines / AssemblyLines is populated, per Kind.
//   - TotalCost equals the sum of line totals after every mutation; the
//     stored value is a cache and costing.EstimateTotal is authoritative.

type Estimate struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"project_id,omitempty"`
	Name      string       `json:"name"`
	Kind      EstimateKind `json:"kind"`

	Lines         []EstimateLine         `json:"lines,omitempty"`
	AssemblyLines []EstimateAssemblyLine `json:"assembly_lines,omitempty"`

	TotalCost float64 `json:"total_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
