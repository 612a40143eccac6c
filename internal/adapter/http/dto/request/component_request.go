package request

import (
	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase"
)

// ComponentCreateRequest is the payload for catalog component creation.
// Metadata is an open key/value bag for technical specs (power, dimensions,
// cooling class); it is stored verbatim and never priced.

type ComponentCreateRequest struct {
	Name       string            `json:"name" binding:"required"`
	Category   string            `json:"category"`
	Unit       string            `json:"unit" binding:"required"`
	LaborHours float64           `json:"labor_hours"`
	Metadata   map[string]string `json:"metadata"`
}

func (r ComponentCreateRequest) ToInput() usecase.CreateComponentInput {
	return usecase.CreateComponentInput{
		Name:       r.Name,
		Category:   entities.Category(r.Category),
		Unit:       r.Unit,
		LaborHours: r.LaborHours,
		Metadata:   r.Metadata,
	}
}

// TierCreateRequest is the payload for adding a quality tier to a component.

type TierCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	UnitCost    float64 `json:"unit_cost" binding:"required"`
	Description string  `json:"description"`
}

func (r TierCreateRequest) ToInput() usecase.CreateTierInput {
	return usecase.CreateTierInput{
		Name:        r.Name,
		UnitCost:    r.UnitCost,
		Description: r.Description,
	}
}
