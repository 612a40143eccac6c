package request

import (
	"time"

	"hyperion_estimating/internal/domain/entities"
	"hyperion_estimating/internal/usecase"
)

type ProjectCreateRequest struct {
	Name   string `json:"name" binding:"required"`
	Region string `json:"region"`
}

// ActualCostCreateRequest records a spend against the project in the path.
// component_id and estimate_line_id are optional drill-down references.

type ActualCostCreateRequest struct {
	ComponentID    string     `json:"component_id"`
	EstimateLineID string     `json:"estimate_line_id"`
	Amount         float64    `json:"amount" binding:"required"`
	Category       string     `json:"category"`
	IncurredAt     *time.Time `json:"incurred_at"`
}

func (r ActualCostCreateRequest) ToInput(projectID string) usecase.RecordActualCostInput {
	in := usecase.RecordActualCostInput{
		ProjectID:      projectID,
		ComponentID:    r.ComponentID,
		EstimateLineID: r.EstimateLineID,
		Amount:         r.Amount,
		Category:       entities.Category(r.Category),
	}
	if r.IncurredAt != nil {
		in.IncurredAt = *r.IncurredAt
	}
	return in
}

// ChangeOrderCreateRequest adds a pending change order. Amount may be
// negative for descoping but never zero.

type ChangeOrderCreateRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}
