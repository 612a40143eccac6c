package response

import (
	"time"

	"hyperion_estimating/internal/domain/entities"
)

type ComponentResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Unit       string            `json:"unit"`
	LaborHours float64           `json:"labor_hours"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func FromComponent(c entities.Component) ComponentResponse {
	return ComponentResponse{
		ID:         c.ID,
		Name:       c.Name,
		Category:   string(c.Category),
		Unit:       c.Unit,
		LaborHours: c.LaborHours,
		Metadata:   c.Metadata,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromComponents(cs []entities.Component) []ComponentResponse {
	out := make([]ComponentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromComponent(c))
	}
	return out
}

type TierResponse struct {
	ID          string    `json:"id"`
	ComponentID string    `json:"component_id"`
	Name        string    `json:"name"`
	UnitCost    float64   `json:"unit_cost"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTier(t entities.QualityTier) TierResponse {
	return TierResponse{
		ID:          t.ID,
		ComponentID: t.ComponentID,
		Name:        t.Name,
		UnitCost:    t.UnitCost,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func FromTiers(ts []entities.QualityTier) []TierResponse {
	out := make([]TierResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTier(t))
	}
	return out
}

// ComponentWithTiersResponse is the detail view of a component.

type ComponentWithTiersResponse struct {
	ComponentResponse
	Tiers []TierResponse `json:"tiers"`
}

func FromComponentWithTiers(c entities.Component, tiers []entities.QualityTier) ComponentWithTiersResponse {
	return ComponentWithTiersResponse{
		ComponentResponse: FromComponent(c),
		Tiers:             FromTiers(tiers),
	}
}
