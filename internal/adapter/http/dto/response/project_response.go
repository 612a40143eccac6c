package response

import (
	"time"

	"hyperion_estimating/internal/domain/entities"
)

type ProjectResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Region:    p.Region,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

type ActualCostResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	ComponentID    string    `json:"component_id,omitempty"`
	EstimateLineID string    `json:"estimate_line_id,omitempty"`
	Amount         float64   `json:"amount"`
	Category       string    `json:"category"`
	IncurredAt     time.Time `json:"incurred_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromActualCost(ac entities.ActualCost) ActualCostResponse {
	return ActualCostResponse{
		ID:             ac.ID,
		ProjectID:      ac.ProjectID,
		ComponentID:    ac.ComponentID,
		EstimateLineID: ac.EstimateLineID,
		Amount:         ac.Amount,
		Category:       string(ac.Category),
		IncurredAt:     ac.IncurredAt,
		CreatedAt:      ac.CreatedAt,
	}
}

type ChangeOrderResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}

func FromChangeOrder(co entities.ChangeOrder) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:          co.ID,
		ProjectID:   co.ProjectID,
		Description: co.Description,
		Amount:      co.Amount,
		Status:      string(co.Status),
		CreatedAt:   co.CreatedAt,
		ApprovedAt:  co.ApprovedAt,
	}
}
