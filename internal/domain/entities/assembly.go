package entities

import "time"

// AssemblyComponentLine is one row inside an Assembly: a component priced at
// a selected quality tier, repeated Quantity times.
//
// Invariants:
//   - Quantity > 0, enforced at construction time (costing.NewAssemblyLine);
//     computations never see a non-positive quantity from a valid assembly.
//   - TierID must belong to ComponentID; ownership is checked against the
//     catalog whenever totals are computed.
//   - Unit is inherited from the component unless explicitly overridden.

type AssemblyComponentLine struct {
	ComponentID string  `json:"component_id"`
	TierID      string  `json:"tier_id"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// Assembly is a named, reusable bundle of component lines.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Lines are embedded in the item; an assembly is read and written whole.
//
// Cached totals:
//   - TotalMaterialCost and TotalLaborHours are display caches refreshed on
//     every mutation. They are advisory: any consumer that needs a correct
//     number recomputes from Lines through costing.ComputeAssembly. Labor
//     cost is never stored because it depends on the caller's labor rate.

type Assembly struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Lines       []AssemblyComponentLine `json:"lines"`

	TotalMaterialCost float64 `json:"total_material_cost"`
	TotalLaborHours   float64 `json:"total_labor_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
