package wealth

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pathtwo/pathtwo/internal/models"
)

// Engine turns raw wealth entries into the derived dashboard structures.
// It is a pure transformation over its arguments: no I/O, no shared state,
// safe to call from any number of concurrent requests. Every operation is
// a total function over its input domain: malformed numeric strings
// coerce to zero and empty input produces a well-formed empty summary,
// never an error.
type Engine struct {
	includeZero bool
}

// Options configures summary construction.
type Options struct {
	// IncludeZero keeps zero-valued sub-categories in the asset and debt
	// breakdowns. The UI decides whether to hide them; with IncludeZero
	// false the engine drops them before computing percentages.
	IncludeZero bool
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{includeZero: opts.IncludeZero}
}

// field maps a breakdown chart label to its entry sub-field.
type field struct {
	label string
	get   func(*models.WealthEntry) string
}

var assetFields = []field{
	{"Stocks", func(e *models.WealthEntry) string { return e.Stocks }},
	{"Bonds", func(e *models.WealthEntry) string { return e.Bonds }},
	{"Real Estate", func(e *models.WealthEntry) string { return e.RealEstate }},
	{"Crypto", func(e *models.WealthEntry) string { return e.Crypto }},
	{"Commodities", func(e *models.WealthEntry) string { return e.Commodities }},
	{"Alternative Investments", func(e *models.WealthEntry) string { return e.AlternativeInvestments }},
}

var debtFields = []field{
	{"Mortgage", func(e *models.WealthEntry) string { return e.Mortgage }},
	{"Credit Cards", func(e *models.WealthEntry) string { return e.CreditCards }},
	{"Student Loans", func(e *models.WealthEntry) string { return e.StudentLoans }},
	{"Auto Loans", func(e *models.WealthEntry) string { return e.AutoLoans }},
}

// BuildSummary aggregates one category's entries into the dashboard view.
// The input slice is not mutated; entries may arrive in any order and in
// particular may be empty, in which case the summary reports zero entries
// with nil range/latest/breakdowns and an empty (non-nil) trend.
func (g *Engine) BuildSummary(category models.WealthCategory, entries []models.WealthEntry) *models.WealthSummaryCategory {
	sorted := make([]models.WealthEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Equal dates fall back to the id so the summary is identical
		// for any permutation of the same entries.
		if sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	summary := &models.WealthSummaryCategory{
		Category:     category,
		TotalEntries: len(sorted),
		Trend:        make([]models.TrendPoint, 0, len(sorted)),
	}

	for i := range sorted {
		e := &sorted[i]
		summary.Trend = append(summary.Trend, models.TrendPoint{
			Date:        e.Date,
			NetWorth:    amountFloat(e.NetWorth),
			Investments: amountFloat(e.Investments),
			Cash:        amountFloat(e.Cash),
			Liabilities: amountFloat(e.Liabilities),
			SavingsRate: amountFloat(e.SavingsRate),
		})
	}

	if len(sorted) == 0 {
		return summary
	}

	summary.Range = &models.DateRange{
		Start: sorted[0].Date,
		End:   sorted[len(sorted)-1].Date,
	}

	latest := &sorted[len(sorted)-1]
	summary.Latest = &models.LatestSnapshot{
		ID:          latest.ID,
		Date:        latest.Date,
		NetWorth:    amountFloat(latest.NetWorth),
		Investments: amountFloat(latest.Investments),
		Cash:        amountFloat(latest.Cash),
		Liabilities: amountFloat(latest.Liabilities),
		FireTarget:  amountFloat(latest.FireTarget),
		SavingsRate: amountFloat(latest.SavingsRate),
	}

	summary.MonthlyGrowth = monthlyGrowth(sorted)
	summary.AverageSavingsRate = averageSavingsRate(sorted)
	summary.AssetAllocation = g.breakdown(latest, assetFields)
	summary.DebtBreakdown = g.breakdown(latest, debtFields)
	summary.CashFlow = cashFlow(latest)

	return summary
}

// monthlyGrowth compares the latest entry's net worth to the second-to-last
// entry's. Fewer than two entries, or a zero previous value, yields 0,
// never NaN or Inf.
func monthlyGrowth(sorted []models.WealthEntry) float64 {
	if len(sorted) < 2 {
		return 0
	}
	latest := amount(sorted[len(sorted)-1].NetWorth)
	previous := amount(sorted[len(sorted)-2].NetWorth)
	if previous.IsZero() {
		return 0
	}
	return latest.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func averageSavingsRate(sorted []models.WealthEntry) float64 {
	if len(sorted) == 0 {
		return 0
	}
	sum := decimal.Zero
	for i := range sorted {
		sum = sum.Add(amount(sorted[i].SavingsRate))
	}
	return sum.Div(decimal.NewFromInt(int64(len(sorted)))).InexactFloat64()
}

// breakdown builds an allocation chart from the latest entry's sub-fields.
// A non-positive total means "no data" (or debt-free) and returns nil
// rather than an all-zero chart.
func (g *Engine) breakdown(latest *models.WealthEntry, fields []field) []models.AllocationPoint {
	total := decimal.Zero
	values := make([]decimal.Decimal, len(fields))
	for i, f := range fields {
		values[i] = amount(f.get(latest))
		total = total.Add(values[i])
	}
	if total.Sign() <= 0 {
		return nil
	}

	points := make([]models.AllocationPoint, 0, len(fields))
	for i, f := range fields {
		if !g.includeZero && values[i].IsZero() {
			continue
		}
		points = append(points, models.AllocationPoint{
			Label:      f.label,
			Value:      values[i].InexactFloat64(),
			Percentage: values[i].Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64(),
		})
	}
	return points
}

// cashFlow reports the latest entry's monthly figures, or nil when the
// entry recorded none of them. An empty string is "not recorded"; "0" is
// a real zero and produces a zero-valued (non-nil) cash flow.
func cashFlow(latest *models.WealthEntry) *models.CashFlow {
	if latest.MonthlyIncome == "" && latest.MonthlyExpenses == "" && latest.MonthlySavings == "" {
		return nil
	}
	return &models.CashFlow{
		Income:   amountFloat(latest.MonthlyIncome),
		Expenses: amountFloat(latest.MonthlyExpenses),
		Savings:  amountFloat(latest.MonthlySavings),
	}
}

// CalculateProgress returns a goal's completion percentage, capped at 100:
// goals are framed as "reached", never "overshot". A non-positive target
// counts as reached once anything has been saved toward it.
func CalculateProgress(current, target string) float64 {
	cur := amount(current)
	tgt := amount(target)
	if tgt.Sign() <= 0 {
		if cur.Sign() > 0 {
			return 100
		}
		return 0
	}
	pct := cur.Div(tgt).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.InexactFloat64()
}

// EstimateYearsToFire projects how many years of saving remain until the
// FIRE target is reached. It returns nil when monthly savings are zero or
// negative: no projection is possible and the caller must show a neutral
// placeholder, not zero or infinity.
func EstimateYearsToFire(currentNetWorth, target, monthlySavings string) *float64 {
	savings := amount(monthlySavings)
	if savings.Sign() <= 0 {
		return nil
	}
	remaining := amount(target).Sub(amount(currentNetWorth))
	if remaining.Sign() <= 0 {
		years := 0.0
		return &years
	}
	years := remaining.Div(savings).Div(decimal.NewFromInt(12)).InexactFloat64()
	return &years
}
