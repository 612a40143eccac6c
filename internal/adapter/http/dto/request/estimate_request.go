package request

import (
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase"
)

type EstimateLineRequest struct {
	ComponentID string  `json:"component_id" binding:"required"`
	TierID      string  `json:"tier_id" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit"`
}

type EstimateAssemblyLineRequest struct {
	AssemblyID string `json:"assembly_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
}

// EstimateCreateRequest creates an estimate with its first batch of lines.
// Kind selects which line list applies; labor_rate is required for
// hierarchical estimates. atomic switches the append contract from partial
// accept to all-or-nothing.

type EstimateCreateRequest struct {
	Name          string                        `json:"name" binding:"required"`
	ProjectID     string                        `json:"project_id"`
	Kind          string                        `json:"kind" binding:"required"`
	Lines         []EstimateLineRequest         `json:"lines"`
	AssemblyLines []EstimateAssemblyLineRequest `json:"assembly_lines"`
	LaborRate     *float64                      `json:"labor_rate"`
	Atomic        bool                          `json:"atomic"`
}

func (r EstimateCreateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		Name:          r.Name,
		ProjectID:     r.ProjectID,
		Kind:          entities.EstimateKind(r.Kind),
		Lines:         toLineInputs(r.Lines),
		AssemblyLines: toAssemblyLineInputs(r.AssemblyLines),
		LaborRate:     r.LaborRate,
		Atomic:        r.Atomic,
	}
}

// EstimateAppendLinesRequest appends flat component lines.

type EstimateAppendLinesRequest struct {
	Lines  []EstimateLineRequest `json:"lines" binding:"required"`
	Atomic bool                  `json:"atomic"`
}

func (r EstimateAppendLinesRequest) ToInputs() []usecase.EstimateLineInput {
	return toLineInputs(r.Lines)
}

// EstimateAppendAssembliesRequest appends assembly reference lines.

type EstimateAppendAssembliesRequest struct {
	AssemblyLines []EstimateAssemblyLineRequest `json:"assembly_lines" binding:"required"`
	LaborRate     *float64                      `json:"labor_rate"`
	Atomic        bool                          `json:"atomic"`
}

func (r EstimateAppendAssembliesRequest) ToInputs() []usecase.EstimateAssemblyLineInput {
	return toAssemblyLineInputs(r.AssemblyLines)
}

func toLineInputs(lines []EstimateLineRequest) []usecase.EstimateLineInput {
	out := make([]usecase.EstimateLineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, usecase.EstimateLineInput{
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
		})
	}
	return out
}

func toAssemblyLineInputs(lines []EstimateAssemblyLineRequest) []usecase.EstimateAssemblyLineInput {
	out := make([]usecase.EstimateAssemblyLineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, usecase.EstimateAssemblyLineInput{
			AssemblyID: l.AssemblyID,
			Quantity:   l.Quantity,
		})
	}
	return out
}
