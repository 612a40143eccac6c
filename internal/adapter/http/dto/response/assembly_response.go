package response

import (
	"time"

	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/domain/entities"
)

type AssemblyLineResponse struct {
	ComponentID string  `json:"component_id"`
	TierID      string  `json:"tier_id"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	Note        string  `json:"note,omitempty"`
}

type AssemblyResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description,omitempty"`
	Lines             []AssemblyLineResponse `json:"lines"`
	TotalMaterialCost float64                `json:"total_material_cost"`
	TotalLaborHours   float64                `json:"total_labor_hours"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

func FromAssembly(a entities.Assembly) AssemblyResponse {
	lines := make([]AssemblyLineResponse, 0, len(a.Lines))
	for _, l := range a.Lines {
		lines = append(lines, AssemblyLineResponse{
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			Note:        l.Note,
		})
	}
	return AssemblyResponse{
		ID:                a.ID,
		Name:              a.Name,
		Description:       a.Description,
		Lines:             lines,
		TotalMaterialCost: a.TotalMaterialCost,
		TotalLaborHours:   a.TotalLaborHours,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func FromAssemblies(as []entities.Assembly) []AssemblyResponse {
	out := make([]AssemblyResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAssembly(a))
	}
	return out
}

// AssemblyTotalsResponse is the on-demand costing view of an assembly at the
// caller's labor rate.

type AssemblyTotalsResponse struct {
	AssemblyID   string          `json:"assembly_id"`
	LaborRate    float64         `json:"labor_rate"`
	MaterialCost float64         `json:"material_cost"`
	LaborHours   float64         `json:"labor_hours"`
	LaborCost    float64         `json:"labor_cost"`
	TotalCost    float64         `json:"total_cost"`
	Issues       []IssueResponse `json:"issues,omitempty"`
}

func FromAssemblyTotals(assemblyID string, laborRate float64, t costing.AssemblyTotals, issues []costing.LineIssue) AssemblyTotalsResponse {
	return AssemblyTotalsResponse{
		AssemblyID:   assemblyID,
		LaborRate:    laborRate,
		MaterialCost: t.MaterialCost,
		LaborHours:   t.LaborHours,
		LaborCost:    t.LaborCost,
		TotalCost:    t.TotalCost,
		Issues:       FromIssues(issues),
	}
}
