package request

import "hyperion_estimating/internal/usecase"

type AssemblyLineRequest struct {
	ComponentID string  `json:"component_id" binding:"required"`
	TierID      string  `json:"tier_id" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit"`
	Note        string  `json:"note"`
}

// AssemblyCreateRequest is the payload for assembly creation. Every line must
// validate against the catalog; a single bad line rejects the whole assembly.

type AssemblyCreateRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Lines       []AssemblyLineRequest `json:"lines" binding:"required"`
}

func (r AssemblyCreateRequest) ToLines() []usecase.AssemblyLineInput {
	lines := make([]usecase.AssemblyLineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, usecase.AssemblyLineInput{
			ComponentID: l.ComponentID,
			TierID:      l.TierID,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			Note:        l.Note,
		})
	}
	return lines
}
