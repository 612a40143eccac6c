package costing

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingLaborRate is returned when a computation needs labor cost but
	// the Config carries no rate. There is no implicit default.
	ErrMissingLaborRate = errors.New("missing labor rate")
	// ErrInvalidLaborRate is returned for a configured rate below zero.
	ErrInvalidLaborRate = errors.New("labor rate must be >= 0")
	// ErrKindMismatch is returned when appended lines do not match the
	// estimate's representation (flat vs hierarchical).
	ErrKindMismatch = errors.New("line kind does not match estimate kind")
	// ErrBatchRejected is returned by atomic appends when any line fails
	// validation; the result carries the per-line issues.
	ErrBatchRejected = errors.New("batch rejected")

	// Catalog construction errors.
	ErrDuplicateComponent  = errors.New("duplicate component id")
	ErrDuplicateTier       = errors.New("duplicate tier id")
	ErrOrphanTier          = errors.New("tier references unknown component")
	ErrNonPositiveUnitCost = errors.New("tier unit cost must be > 0")

	// Line construction errors.
	ErrNonPositiveQuantity = errors.New("quantity must be > 0")
	ErrEmptyReference      = errors.New("empty component or tier reference")
)

// IssueKind classifies a per-line problem reported by a computation.

type IssueKind string

const (
	// IssueValidationFailed: the line fails structural checks (non-positive
	// quantity, empty reference, representation mismatch).
	IssueValidationFailed IssueKind = "validation_failed"
	// IssueReferenceNotFound: a referenced component, tier, or assembly does
	// not exist in the supplied catalog/assembly set.
	IssueReferenceNotFound IssueKind = "reference_not_found"
	// IssueInvalidTierSelection: the selected tier does not belong to the
	// referenced component.
	IssueInvalidTierSelection IssueKind = "invalid_tier_selection"
)

// LineIssue is a structured per-line problem. Computations report issues and
// carry on with the remaining lines; there is no silent exclusion — every
// skipped line appears exactly once in the issue list.

type LineIssue struct {
	Index  int       `json:"index"`
	Kind   IssueKind `json:"kind"`
	Ref    string    `json:"ref,omitempty"`
	Reason string    `json:"reason"`
}

func (i LineIssue) String() string {
	if i.Ref != "" {
		return fmt.Sprintf("line %d [%s] %s: %s", i.Index, i.Kind, i.Ref, i.Reason)
	}
	return fmt.Sprintf("line %d [%s]: %s", i.Index, i.Kind, i.Reason)
}
