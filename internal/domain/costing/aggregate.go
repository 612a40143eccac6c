package costing

import (
	"math"
	"sort"
	"time"

	"hyperion_estimating/internal/domain/entities"
)

// CategoryRow is one reporting bucket of an estimate's category breakdown.

type CategoryRow struct {
	Category   entities.Category `json:"category"`
	Cost       float64           `json:"cost"`
	LaborHours float64           `json:"labor_hours"`
	Percentage float64           `json:"percentage"`
}

// RiskLevel bands the absolute variance percentage of a project.

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// VarianceRow is the estimated-vs-actual position of one project.

type VarianceRow struct {
	ProjectID          string    `json:"project_id"`
	ProjectName        string    `json:"project_name"`
	Region             string    `json:"region,omitempty"`
	EstimatedCost      float64   `json:"estimated_cost"`
	ActualCost         float64   `json:"actual_cost"`
	Variance           float64   `json:"variance"`
	VariancePercentage float64   `json:"variance_percentage"`
	RiskLevel          RiskLevel `json:"risk_level"`
}

// RegionRow is one bucket of the portfolio's regional breakdown.

type RegionRow struct {
	Region        string  `json:"region"`
	EstimatedCost float64 `json:"estimated_cost"`
	ProjectCount  int     `json:"project_count"`
	Percentage    float64 `json:"percentage"`
}

// TrendRow is one calendar-month bucket of the estimated/actual trend.

type TrendRow struct {
	Month         string  `json:"month"`
	EstimatedCost float64 `json:"estimated_cost"`
	ActualCost    float64 `json:"actual_cost"`
}

// CategoryBreakdown partitions an estimate's lines by the explicit category
// of the referenced components, summing cost and labor hours per category
// and each category's share of the grand total. Hierarchical estimates are
// exploded through the catalog, so labor cost needs the configured rate;
// flat estimates carry no labor and ignore the rate. A grand total of zero
// yields all-zero percentages, never NaN.
func CategoryBreakdown(
	e entities.Estimate,
	cat *Catalog,
	assemblies map[string]entities.Assembly,
	cfg Config,
) ([]CategoryRow, []LineIssue, error) {
	type bucket struct {
		cost  float64
		hours float64
	}
	buckets := make(map[entities.Category]*bucket)
	add := func(c entities.Category, cost, hours float64) {
		b, ok := buckets[c]
		if !ok {
			b = &bucket{}
			buckets[c] = b
		}
		b.cost += cost
		b.hours += hours
	}

	var issues []LineIssue

	switch e.Kind {
	case entities.EstimateKindHierarchical:
		rate, err := cfg.rate()
		if err != nil {
			return nil, nil, err
		}
		for i, al := range e.AssemblyLines {
			asm, ok := assemblies[al.AssemblyID]
			if !ok {
				issues = append(issues, LineIssue{
					Index:  i,
					Kind:   IssueReferenceNotFound,
					Ref:    al.AssemblyID,
					Reason: "assembly not found",
				})
				continue
			}
			mult := float64(al.Quantity)
			for j, line := range asm.Lines {
				comp, tier, issue := resolveLine(j, line, cat)
				if issue != nil {
					issue.Ref = asm.ID + "/" + issue.Ref
					issues = append(issues, *issue)
					continue
				}
				qty := line.Quantity * mult
				hours := comp.LaborHours * qty
				add(cat.category(comp), tier.UnitCost*qty+hours*rate, hours)
			}
		}
	default:
		for i, line := range e.Lines {
			asmLine := entities.AssemblyComponentLine{
				ComponentID: line.ComponentID,
				TierID:      line.TierID,
				Quantity:    line.Quantity,
			}
			comp, tier, issue := resolveLine(i, asmLine, cat)
			if issue != nil {
				issues = append(issues, *issue)
				continue
			}
			add(cat.category(comp), tier.UnitCost*line.Quantity, comp.LaborHours*line.Quantity)
		}
	}

	var grandTotal float64
	for _, b := range buckets {
		grandTotal += b.cost
	}

	rows := make([]CategoryRow, 0, len(buckets))
	for c, b := range buckets {
		rows = append(rows, CategoryRow{
			Category:   c,
			Cost:       b.cost,
			LaborHours: b.hours,
			Percentage: percentOf(b.cost, grandTotal),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cost != rows[j].Cost {
			return rows[i].Cost > rows[j].Cost
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, issues, nil
}

// ClassifyRisk bands an absolute variance percentage. Boundaries are
// inclusive on the lower bound of each band: exactly 10 is medium, 20 is
// high, 30 is critical.
func ClassifyRisk(variancePct float64) RiskLevel {
	abs := math.Abs(variancePct)
	switch {
	case abs >= 30:
		return RiskCritical
	case abs >= 20:
		return RiskHigh
	case abs >= 10:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ProjectVariance rolls up estimated vs actual cost per project. Joins are
// by explicit project id only; estimates, actuals, or change orders that
// reference an unknown project are reported as issues, never matched by
// name. Approved change orders move the estimated baseline; pending and
// rejected ones do not. A zero estimated cost yields 0% variance.
func ProjectVariance(
	projects []entities.Project,
	estimates []entities.Estimate,
	actuals []entities.ActualCost,
	changeOrders []entities.ChangeOrder,
) ([]VarianceRow, []LineIssue) {
	byID := make(map[string]*VarianceRow, len(projects))
	rows := make([]VarianceRow, len(projects))
	for i, p := range projects {
		rows[i] = VarianceRow{ProjectID: p.ID, ProjectName: p.Name, Region: p.Region}
		byID[p.ID] = &rows[i]
	}

	var issues []LineIssue
	missing := func(index int, ref, what string) {
		issues = append(issues, LineIssue{
			Index:  index,
			Kind:   IssueReferenceNotFound,
			Ref:    ref,
			Reason: what + " references unknown project",
		})
	}

	for i, e := range estimates {
		if e.ProjectID == "" {
			continue // unattached estimates do not participate
		}
		row, ok := byID[e.ProjectID]
		if !ok {
			missing(i, e.ID, "estimate")
			continue
		}
		row.EstimatedCost += EstimateTotal(e)
	}
	for i, co := range changeOrders {
		if co.Status != entities.ChangeOrderStatusApproved {
			continue
		}
		row, ok := byID[co.ProjectID]
		if !ok {
			missing(i, co.ID, "change order")
			continue
		}
		row.EstimatedCost += co.Amount
	}
	for i, ac := range actuals {
		row, ok := byID[ac.ProjectID]
		if !ok {
			missing(i, ac.ID, "actual cost")
			continue
		}
		row.ActualCost += ac.Amount
	}

	for i := range rows {
		rows[i].Variance = rows[i].ActualCost - rows[i].EstimatedCost
		rows[i].VariancePercentage = percentOf(rows[i].Variance, rows[i].EstimatedCost)
		rows[i].RiskLevel = ClassifyRisk(rows[i].VariancePercentage)
	}
	return rows, issues
}

// RegionBreakdown sums estimated cost per project region across the
// portfolio. Projects without a region land in "unspecified".
func RegionBreakdown(projects []entities.Project, estimates []entities.Estimate) []RegionRow {
	regionOf := make(map[string]string, len(projects))
	counts := make(map[string]int)
	for _, p := range projects {
		region := p.Region
		if region == "" {
			region = "unspecified"
		}
		regionOf[p.ID] = region
		counts[region]++
	}

	costs := make(map[string]float64)
	for _, e := range estimates {
		region, ok := regionOf[e.ProjectID]
		if !ok {
			continue
		}
		costs[region] += EstimateTotal(e)
	}

	var total float64
	for _, c := range costs {
		total += c
	}

	rows := make([]RegionRow, 0, len(counts))
	for region, n := range counts {
		rows = append(rows, RegionRow{
			Region:        region,
			EstimatedCost: costs[region],
			ProjectCount:  n,
			Percentage:    percentOf(costs[region], total),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].EstimatedCost != rows[j].EstimatedCost {
			return rows[i].EstimatedCost > rows[j].EstimatedCost
		}
		return rows[i].Region < rows[j].Region
	})
	return rows
}

// MonthlyTrend buckets estimates (by creation) and actual costs (by incurred
// date) into the trailing window of calendar months ending at ref, UTC.
// Every month in the window appears, zero-filled when empty; entries outside
// the window are ignored.
func MonthlyTrend(estimates []entities.Estimate, actuals []entities.ActualCost, months int, ref time.Time) []TrendRow {
	if months <= 0 {
		months = 6
	}
	ref = ref.UTC()

	index := make(map[string]int, months)
	rows := make([]TrendRow, months)
	for i := 0; i < months; i++ {
		m := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-(months-1), 0)
		key := m.Format("2006-01")
		rows[i] = TrendRow{Month: key}
		index[key] = i
	}

	for _, e := range estimates {
		if i, ok := index[e.CreatedAt.UTC().Format("2006-01")]; ok {
			rows[i].EstimatedCost += EstimateTotal(e)
		}
	}
	for _, ac := range actuals {
		if i, ok := index[ac.IncurredAt.UTC().Format("2006-01")]; ok {
			rows[i].ActualCost += ac.Amount
		}
	}
	return rows
}

// resolveLine validates one component line against the catalog, returning
// the resolved component and tier or a single issue describing why the line
// must be excluded.
func resolveLine(index int, line entities.AssemblyComponentLine, cat *Catalog) (entities.Component, entities.QualityTier, *LineIssue) {
	if line.Quantity <= 0 {
		return entities.Component{}, entities.QualityTier{}, &LineIssue{
			Index:  index,
			Kind:   IssueValidationFailed,
			Ref:    line.ComponentID,
			Reason: "quantity must be > 0",
		}
	}
	comp, ok := cat.Component(line.ComponentID)
	if !ok {
		return entities.Component{}, entities.QualityTier{}, &LineIssue{
			Index:  index,
			Kind:   IssueReferenceNotFound,
			Ref:    line.ComponentID,
			Reason: "component not in catalog",
		}
	}
	tier, ok := cat.Tier(line.TierID)
	if !ok {
		return entities.Component{}, entities.QualityTier{}, &LineIssue{
			Index:  index,
			Kind:   IssueReferenceNotFound,
			Ref:    line.TierID,
			Reason: "quality tier not in catalog",
		}
	}
	if tier.ComponentID != comp.ID {
		return entities.Component{}, entities.QualityTier{}, &LineIssue{
			Index:  index,
			Kind:   IssueInvalidTierSelection,
			Ref:    line.TierID,
			Reason: "tier does not belong to component",
		}
	}
	return comp, tier, nil
}

// percentOf resolves share-of-total with a degenerate-division guard: a zero
// denominator is an expected edge case and maps to 0, never NaN or IsInf.
func percentOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
