package models

import "time"

// TrendPoint is one chart point per stored entry, in chronological order.
// No gap-filling or resampling is applied.
type TrendPoint struct {
	Date        time.Time `json:"date"`
	NetWorth    float64   `json:"netWorth"`
	Investments float64   `json:"investments"`
	Cash        float64   `json:"cash"`
	Liabilities float64   `json:"liabilities"`
	SavingsRate float64   `json:"savingsRate"`
}

// AllocationPoint is one slice of an asset or debt breakdown chart.
type AllocationPoint struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// DateRange bounds the snapshots that feed a summary.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LatestSnapshot is the chronologically last entry of a category with every
// numeric field parsed to a number. A nil *LatestSnapshot means "no data",
// which callers must keep distinct from a snapshot of zero values.
type LatestSnapshot struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	NetWorth    float64   `json:"netWorth"`
	Investments float64   `json:"investments"`
	Cash        float64   `json:"cash"`
	Liabilities float64   `json:"liabilities"`
	FireTarget  float64   `json:"fireTarget"`
	SavingsRate float64   `json:"savingsRate"`
}

// CashFlow is the simplified monthly cash-flow view of the latest snapshot.
// A nil *CashFlow means the latest entry recorded no cash-flow data at all;
// a zero-valued CashFlow means "$0 actuals".
type CashFlow struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// WealthInsight pairs a category summary with its FIRE projection for the
// admin insights view. YearsToFire is nil when the latest entry records no
// positive monthly savings to project from.
type WealthInsight struct {
	Summary     *WealthSummaryCategory `json:"summary"`
	YearsToFire *float64               `json:"yearsToFire"`
}

// WealthSummaryCategory aggregates one category's entries for the dashboard
// and admin insights views. It is computed on demand and never persisted.
//
// AssetAllocation and DebtBreakdown are nil when the corresponding totals
// are zero or negative: an empty breakdown is "no data" (or "debt-free"),
// not a degenerate all-zero chart, and serializes as JSON null.
type WealthSummaryCategory struct {
	Category           WealthCategory    `json:"category"`
	TotalEntries       int               `json:"totalEntries"`
	Range              *DateRange        `json:"range"`
	Latest             *LatestSnapshot   `json:"latest"`
	MonthlyGrowth      float64           `json:"monthlyGrowth"`
	AverageSavingsRate float64           `json:"averageSavingsRate"`
	Trend              []TrendPoint      `json:"trend"`
	AssetAllocation    []AllocationPoint `json:"assetAllocation"`
	DebtBreakdown      []AllocationPoint `json:"debtBreakdown"`
	CashFlow           *CashFlow         `json:"cashFlow"`
}
