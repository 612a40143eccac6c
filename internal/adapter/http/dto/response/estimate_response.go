package response

import (
	"time"

	"hyperion_estimating/internal/domain/costing"
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase"
)

// IssueResponse is one rejected or degraded line with its reason.

type IssueResponse struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Ref    string `json:"ref,omitempty"`
	Reason string `json:"reason"`
}

func FromIssues(issues []costing.LineIssue) []IssueResponse {
	if len(issues) == 0 {
		return nil
	}
	out := make([]IssueResponse, 0, len(issues))
	for _, i := range issues {
		out = append(out, IssueResponse{
			Index:  i.Index,
			Kind:   string(i.Kind),
			Ref:    i.Ref,
			Reason: i.Reason,
		})
	}
	return out
}

type EstimateLineResponse struct {
	ID          string  `json:"id"`
	ComponentID string  `json:"component_id"`
	TierID      string  `json:"tier_id"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	TotalCost   float64 `json:"total_cost"`
}

type EstimateAssemblyLineResponse struct {
	ID                string  `json:"id"`
	AssemblyID        string  `json:"assembly_id"`
	Quantity          int     `json:"quantity"`
	TotalMaterialCost float64 `json:"total_material_cost"`
	TotalLaborCost    float64 `json:"total_labor_cost"`
	TotalLaborHours   float64 `json:"total_labor_hours"`
}

type EstimateResponse struct {
	ID            string                         `json:"id"`
	ProjectID     string                         `json:"project_id,omitempty"`
	Name          string                         `json:"name"`
	Kind          string                         `json:"kind"`
	Lines         []EstimateLineResponse         `json:"lines,omitempty"`
	AssemblyLines []EstimateAssemblyLineResponse `json:"assembly_lines,omitempty"`
	TotalCost     float64                        `json:"total_cost"`
	CreatedAt     time.Time                      `json:"created_at"`
	UpdatedAt     time.Time                      `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	lines := make([]EstimateLineResponse, 0, len(e.Lines))
	for _, l := range e.Lines {
		lines = append(lines, EstimateLineResponse{
			ID:          l.ID,
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			TotalCost:   l.TotalCost,
		})
	}
	assemblyLines := make([]EstimateAssemblyLineResponse, 0, len(e.AssemblyLines))
	for _, al := range e.AssemblyLines {
		assemblyLines = append(assemblyLines, EstimateAssemblyLineResponse{
			ID:                al.ID,
			AssemblyID:        al.AssemblyID,
			Quantity:          al.Quantity,
			TotalMaterialCost: al.TotalMaterialCost,
			TotalLaborCost:    al.TotalLaborCost,
			TotalLaborHours:   al.TotalLaborHours,
		})
	}
	return EstimateResponse{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		Name:          e.Name,
		Kind:          string(e.Kind),
		Lines:         lines,
		AssemblyLines: assemblyLines,
		TotalCost:     e.TotalCost,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromEstimates(es []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEstimate(e))
	}
	return out
}

// AppendOutcomeResponse reports an estimate mutation: the persisted estimate
// plus accepted/rejected counts and per-line rejection reasons.

type AppendOutcomeResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Accepted int              `json:"accepted"`
	Rejected int              `json:"rejected"`
	Issues   []IssueResponse  `json:"issues,omitempty"`
}

func FromAppendOutcome(o usecase.AppendOutcome) AppendOutcomeResponse {
	return AppendOutcomeResponse{
		Estimate: FromEstimate(o.Estimate),
		Accepted: o.Accepted,
		Rejected: len(o.Rejected),
		Issues:   FromIssues(o.Rejected),
	}
}
