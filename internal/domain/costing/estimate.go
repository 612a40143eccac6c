package costing

import (
	"fmt"

	"hyperion_estimating/internal/domain/entities"
)

// EstimateTotal derives an estimate's grand total from its current lines.
// The stored Estimate.TotalCost is a display cache; this accessor is the
// authoritative value.
func EstimateTotal(e entities.Estimate) float64 {
	switch e.Kind {
	case entities.EstimateKindHierarchical:
		var total float64
		for _, al := range e.AssemblyLines {
			total += al.TotalMaterialCost + al.TotalLaborCost
		}
		return total
	default:
		var total float64
		for _, l := range e.Lines {
			total += l.TotalCost
		}
		return total
	}
}

// AppendOptions selects the append contract.

type AppendOptions struct {
	// Atomic rejects the whole batch (ErrBatchRejected) when any candidate
	// line is invalid. The default is partial accept: valid lines are
	// appended and every rejected line is reported in the result.
	Atomic bool
}

// AppendResult reports the outcome of an append. Issues lists every rejected
// line with its reason; Estimate is the updated (or, on whole-batch
// rejection, unchanged) estimate with a refreshed total.

type AppendResult struct {
	Estimate entities.Estimate
	Accepted int
	Issues   []LineIssue
}

// AppendLines validates and appends flat component lines to an estimate.
// Each accepted line is re-priced from the catalog (tier unit cost ×
// quantity) and inherits the component's unit when none is set; the
// estimate's total is recomputed afterwards. Appending flat lines to a
// hierarchical estimate fails the whole batch with ErrKindMismatch.
func AppendLines(e entities.Estimate, lines []entities.EstimateLine, cat *Catalog, opts AppendOptions) (AppendResult, error) {
	if e.Kind == entities.EstimateKindHierarchical {
		return AppendResult{Estimate: e}, ErrKindMismatch
	}

	accepted := make([]entities.EstimateLine, 0, len(lines))
	var issues []LineIssue
	for i, line := range lines {
		priced, issue := priceFlatLine(i, line, cat)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		accepted = append(accepted, priced)
	}

	if opts.Atomic && len(issues) > 0 {
		return AppendResult{Estimate: e, Issues: issues}, ErrBatchRejected
	}

	e.Kind = entities.EstimateKindFlat
	e.Lines = append(e.Lines, accepted...)
	e.TotalCost = EstimateTotal(e)
	return AppendResult{Estimate: e, Accepted: len(accepted), Issues: issues}, nil
}

// AppendAssemblyLines validates and appends assembly reference lines. Each
// accepted line's totals are recomputed from the referenced assembly's
// current line list at the configured labor rate, scaled by the multiplier.
// Data-integrity issues inside a referenced assembly degrade that line to
// partial totals and are forwarded with the assembly's id as the reference.
func AppendAssemblyLines(
	e entities.Estimate,
	lines []entities.EstimateAssemblyLine,
	assemblies map[string]entities.Assembly,
	cat *Catalog,
	cfg Config,
	opts AppendOptions,
) (AppendResult, error) {
	if e.Kind == entities.EstimateKindFlat && len(e.Lines) > 0 {
		return AppendResult{Estimate: e}, ErrKindMismatch
	}

	accepted := make([]entities.EstimateAssemblyLine, 0, len(lines))
	var issues []LineIssue
	for i, line := range lines {
		if line.Quantity < 1 {
			issues = append(issues, LineIssue{
				Index:  i,
				Kind:   IssueValidationFailed,
				Ref:    line.AssemblyID,
				Reason: fmt.Sprintf("multiplier must be >= 1, got %d", line.Quantity),
			})
			continue
		}
		asm, ok := assemblies[line.AssemblyID]
		if !ok {
			issues = append(issues, LineIssue{
				Index:  i,
				Kind:   IssueReferenceNotFound,
				Ref:    line.AssemblyID,
				Reason: "assembly not found",
			})
			continue
		}
		totals, asmIssues, err := ComputeAssembly(asm.Lines, cat, cfg)
		if err != nil {
			return AppendResult{Estimate: e}, err
		}
		for _, ai := range asmIssues {
			ai.Index = i
			ai.Ref = asm.ID
			issues = append(issues, ai)
		}

		mult := float64(line.Quantity)
		line.TotalMaterialCost = totals.MaterialCost * mult
		line.TotalLaborCost = totals.LaborCost * mult
		line.TotalLaborHours = totals.LaborHours * mult
		accepted = append(accepted, line)
	}

	if opts.Atomic && len(issues) > 0 {
		return AppendResult{Estimate: e, Issues: issues}, ErrBatchRejected
	}

	e.Kind = entities.EstimateKindHierarchical
	e.AssemblyLines = append(e.AssemblyLines, accepted...)
	e.TotalCost = EstimateTotal(e)
	return AppendResult{Estimate: e, Accepted: len(accepted), Issues: issues}, nil
}

func priceFlatLine(index int, line entities.EstimateLine, cat *Catalog) (entities.EstimateLine, *LineIssue) {
	comp, tier, issue := resolveLine(index, entities.AssemblyComponentLine{
		ComponentID: line.ComponentID,
		TierID:      line.TierID,
		Quantity:    line.Quantity,
	}, cat)
	if issue != nil {
		return line, issue
	}

	if line.Unit == "" {
		line.Unit = comp.Unit
	}
	line.TotalCost = tier.UnitCost * line.Quantity
	return line, nil
}
