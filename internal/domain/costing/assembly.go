package costing

import (
	"fmt"
	"strings"

	"hyperion_estimating/internal/domain/entities"
)

// AssemblyTotals is the derived cost of one assembly instance at a given
// labor rate.

type AssemblyTotals struct {
	MaterialCost float64 `json:"material_cost"`
	LaborHours   float64 `json:"labor_hours"`
	LaborCost    float64 `json:"labor_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// NewAssemblyLine builds a validated assembly component line. Non-positive
// quantities and empty references are rejected here, at construction time,
// so computations over a stored assembly never see them.
func NewAssemblyLine(componentID, tierID string, quantity float64, unit, note string) (entities.AssemblyComponentLine, error) {
	componentID = strings.TrimSpace(componentID)
	tierID = strings.TrimSpace(tierID)
	if componentID == "" || tierID == "" {
		return entities.AssemblyComponentLine{}, ErrEmptyReference
	}
	if quantity <= 0 {
		return entities.AssemblyComponentLine{}, fmt.Errorf("%w: got %v", ErrNonPositiveQuantity, quantity)
	}
	return entities.AssemblyComponentLine{
		ComponentID: componentID,
		TierID:      tierID,
		Quantity:    quantity,
		Unit:        unit,
		Note:        note,
	}, nil
}

// AssemblyMaterials walks the line list and sums material cost and labor
// hours against the catalog. Lines with data-integrity problems (unknown
// references, tier not owned by its component, non-positive quantity that
// slipped past construction) are excluded from the sums and reported, so
// callers can show partial totals instead of failing the whole assembly.
func AssemblyMaterials(lines []entities.AssemblyComponentLine, cat *Catalog) (materialCost, laborHours float64, issues []LineIssue) {
	for i, line := range lines {
		if line.Quantity <= 0 {
			issues = append(issues, LineIssue{
				Index:  i,
				Kind:   IssueValidationFailed,
				Ref:    line.ComponentID,
				Reason: "quantity must be > 0",
			})
			continue
		}
		comp, ok := cat.Component(line.ComponentID)
		if !ok {
			issues = append(issues, LineIssue{
				Index:  i,
				Kind:   IssueReferenceNotFound,
				Ref:    line.ComponentID,
				Reason: "component not in catalog",
			})
			continue
		}
		tier, ok := cat.Tier(line.TierID)
		if !ok {
			issues = append(issues, LineIssue{
				Index:  i,
				Kind:   IssueReferenceNotFound,
				Ref:    line.TierID,
				Reason: "quality tier not in catalog",
			})
			continue
		}
		if tier.ComponentID != comp.ID {
			issues = append(issues, LineIssue{
				Index:  i,
				Kind:   IssueInvalidTierSelection,
				Ref:    line.TierID,
				Reason: fmt.Sprintf("tier belongs to component %s, not %s", tier.ComponentID, comp.ID),
			})
			continue
		}
		materialCost += tier.UnitCost * line.Quantity
		laborHours += comp.LaborHours * line.Quantity
	}
	return materialCost, laborHours, issues
}

// ComputeAssembly derives the full cost of an assembly's line list at the
// configured labor rate. It is a pure function of its inputs: same lines,
// same catalog, same rate, same totals.
func ComputeAssembly(lines []entities.AssemblyComponentLine, cat *Catalog, cfg Config) (AssemblyTotals, []LineIssue, error) {
	rate, err := cfg.rate()
	if err != nil {
		return AssemblyTotals{}, nil, err
	}

	materialCost, laborHours, issues := AssemblyMaterials(lines, cat)
	laborCost := laborHours * rate
	return AssemblyTotals{
		MaterialCost: materialCost,
		LaborHours:   laborHours,
		LaborCost:    laborCost,
		TotalCost:    materialCost + laborCost,
	}, issues, nil
}
