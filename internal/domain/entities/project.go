package entities

import "time"

// Project is a data-center build that estimates and actuals attach to.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Estimates reference a project by explicit project_id only; there is no
// name-based matching anywhere in the system.

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActualCost is a recorded spend against a project, used by variance
// reporting. ComponentID and EstimateLineID are optional back-references for
// drill-down; they never affect the project-level rollup.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id

type ActualCost struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	ComponentID    string    `json:"component_id,omitempty"`
	EstimateLineID string    `json:"estimate_line_id,omitempty"`
	Amount         float64   `json:"amount"`
	Category       Category  `json:"category,omitempty"`
	IncurredAt     time.Time `json:"incurred_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChangeOrderStatus is the approval state of a change order. Only approved
// change orders move a project's estimated-cost baseline.

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

// ChangeOrder is an approved or proposed scope change on a project. The
// Amount may be negative for descoping.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id

type ChangeOrder struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Status      ChangeOrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	ApprovedAt  *time.Time        `json:"approved_at,omitempty"`
}
