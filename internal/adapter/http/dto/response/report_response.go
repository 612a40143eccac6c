package response

import "hyperion_estimating/internal/domain/costing"

// CategoryReportResponse is the per-category breakdown of one estimate.
// Issues lists lines that could not be resolved against the catalog and were
// excluded from the buckets.

type CategoryReportResponse struct {
	EstimateID string                `json:"estimate_id"`
	Rows       []costing.CategoryRow `json:"rows"`
	Issues     []IssueResponse       `json:"issues,omitempty"`
}

// VarianceReportResponse is the estimated-vs-actual position of every
// project. Issues lists records that referenced unknown projects.

type VarianceReportResponse struct {
	Rows   []costing.VarianceRow `json:"rows"`
	Issues []IssueResponse       `json:"issues,omitempty"`
}

type RegionReportResponse struct {
	Rows []costing.RegionRow `json:"rows"`
}

type TrendReportResponse struct {
	Months int                `json:"months"`
	Rows   []costing.TrendRow `json:"rows"`
}
