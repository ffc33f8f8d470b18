package wealth

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtwo/pathtwo/internal/models"
)

func day(n int) time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func entry(id int64, n int, netWorth string) models.WealthEntry {
	return models.WealthEntry{
		ID:       id,
		Date:     day(n),
		Category: models.CategoryBoth,
		NetWorth: netWorth,
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	s := g.BuildSummary(models.CategoryHis, nil)

	assert.Equal(t, models.CategoryHis, s.Category)
	assert.Equal(t, 0, s.TotalEntries)
	assert.Nil(t, s.Range)
	assert.Nil(t, s.Latest)
	assert.NotNil(t, s.Trend)
	assert.Empty(t, s.Trend)
	assert.Zero(t, s.MonthlyGrowth)
	assert.Zero(t, s.AverageSavingsRate)
	assert.Nil(t, s.AssetAllocation)
	assert.Nil(t, s.DebtBreakdown)
	assert.Nil(t, s.CashFlow)
}

func TestBuildSummarySingleEntryGrowthIsZero(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	s := g.BuildSummary(models.CategoryBoth, []models.WealthEntry{entry(1, 0, "123456.78")})

	assert.Equal(t, 1, s.TotalEntries)
	assert.Zero(t, s.MonthlyGrowth)
	require.NotNil(t, s.Latest)
	assert.InDelta(t, 123456.78, s.Latest.NetWorth, 1e-9)
}

func TestBuildSummaryGrowth(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	s := g.BuildSummary(models.CategoryBoth, []models.WealthEntry{
		entry(1, 0, "100000"),
		entry(2, 30, "110000"),
	})
	assert.InDelta(t, 10.0, s.MonthlyGrowth, 1e-9)

	// Zero previous value must not produce Inf or NaN.
	s = g.BuildSummary(models.CategoryBoth, []models.WealthEntry{
		entry(1, 0, "0"),
		entry(2, 30, "110000"),
	})
	assert.Zero(t, s.MonthlyGrowth)
}

func TestBuildSummaryAverageSavingsRate(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	entries := []models.WealthEntry{
		{ID: 1, Date: day(0), SavingsRate: "20"},
		{ID: 2, Date: day(30), SavingsRate: "30"},
		{ID: 3, Date: day(60), SavingsRate: "not-a-number"}, // coerces to 0
	}
	s := g.BuildSummary(models.CategoryHer, entries)
	assert.InDelta(t, 50.0/3.0, s.AverageSavingsRate, 1e-9)
}

func TestBuildSummaryAllocation(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})

	// All-zero sub-fields: no data, not an all-zero chart.
	s := g.BuildSummary(models.CategoryBoth, []models.WealthEntry{entry(1, 0, "100")})
	assert.Nil(t, s.AssetAllocation)
	assert.Nil(t, s.DebtBreakdown)

	e := entry(1, 0, "100")
	e.Stocks = "600"
	e.Bonds = "400"
	s = g.BuildSummary(models.CategoryBoth, []models.WealthEntry{e})

	require.Len(t, s.AssetAllocation, 6)
	byLabel := map[string]models.AllocationPoint{}
	total := 0.0
	for _, p := range s.AssetAllocation {
		byLabel[p.Label] = p
		total += p.Percentage
	}
	assert.InDelta(t, 60.0, byLabel["Stocks"].Percentage, 1e-9)
	assert.InDelta(t, 40.0, byLabel["Bonds"].Percentage, 1e-9)
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestBuildSummaryAllocationDropsZeroRowsWhenConfigured(t *testing.T) {
	g := NewEngine(Options{IncludeZero: false})

	e := entry(1, 0, "100")
	e.Stocks = "600"
	e.Bonds = "400"
	s := g.BuildSummary(models.CategoryBoth, []models.WealthEntry{e})

	require.Len(t, s.AssetAllocation, 2)
	assert.Equal(t, "Stocks", s.AssetAllocation[0].Label)
	assert.Equal(t, "Bonds", s.AssetAllocation[1].Label)
}

func TestBuildSummaryDebtBreakdown(t *testing.T) {
	g := NewEngine(Options{IncludeZero: false})

	e := entry(1, 0, "100")
	e.Mortgage = "150000"
	e.StudentLoans = "50000"
	s := g.BuildSummary(models.CategoryBoth, []models.WealthEntry{e})

	require.Len(t, s.DebtBreakdown, 2)
	assert.InDelta(t, 75.0, s.DebtBreakdown[0].Percentage, 1e-9)
	assert.InDelta(t, 25.0, s.DebtBreakdown[1].Percentage, 1e-9)
}

func TestBuildSummaryCashFlow(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})

	// No cash-flow fields recorded: nil, so the UI can tell "no data"
	// from "$0 actuals".
	s := g.BuildSummary(models.CategoryBoth, []models.WealthEntry{entry(1, 0, "100")})
	assert.Nil(t, s.CashFlow)

	e := entry(1, 0, "100")
	e.MonthlyIncome = "0"
	s = g.BuildSummary(models.CategoryBoth, []models.WealthEntry{e})
	require.NotNil(t, s.CashFlow)
	assert.Zero(t, s.CashFlow.Income)

	e.MonthlyIncome = "8000"
	e.MonthlyExpenses = "5000"
	e.MonthlySavings = "3000"
	s = g.BuildSummary(models.CategoryBoth, []models.WealthEntry{e})
	require.NotNil(t, s.CashFlow)
	assert.InDelta(t, 8000, s.CashFlow.Income, 1e-9)
	assert.InDelta(t, 5000, s.CashFlow.Expenses, 1e-9)
	assert.InDelta(t, 3000, s.CashFlow.Savings, 1e-9)
}

func TestBuildSummaryOrderIndependent(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	entries := []models.WealthEntry{
		entry(1, 0, "100000"),
		entry(2, 30, "105000"),
		entry(3, 60, "103000"),
		entry(4, 90, "110000"),
	}
	want := g.BuildSummary(models.CategoryBoth, entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.WealthEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := g.BuildSummary(models.CategoryBoth, shuffled)
		assert.Equal(t, want, got)
	}
}

func TestBuildSummaryDoesNotMutateInput(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	entries := []models.WealthEntry{
		entry(2, 30, "200"),
		entry(1, 0, "100"),
	}
	g.BuildSummary(models.CategoryBoth, entries)
	assert.Equal(t, int64(2), entries[0].ID)
	assert.Equal(t, int64(1), entries[1].ID)
}

func TestBuildSummaryMalformedFieldsCoerceToZero(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	e := models.WealthEntry{
		ID:          1,
		Date:        day(0),
		NetWorth:    "garbage",
		Investments: "",
		Cash:        "12.5",
		SavingsRate: "NaN-ish",
	}
	s := g.BuildSummary(models.CategoryHis, []models.WealthEntry{e})

	require.NotNil(t, s.Latest)
	assert.Zero(t, s.Latest.NetWorth)
	assert.Zero(t, s.Latest.Investments)
	assert.InDelta(t, 12.5, s.Latest.Cash, 1e-9)
	assert.Zero(t, s.AverageSavingsRate)
}

func TestBuildSummaryEmptySerializesCleanly(t *testing.T) {
	g := NewEngine(Options{IncludeZero: true})
	raw, err := json.Marshal(g.BuildSummary(models.CategoryBoth, nil))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["range"])
	assert.Nil(t, decoded["latest"])
	assert.Nil(t, decoded["assetAllocation"])
	assert.Nil(t, decoded["debtBreakdown"])
	assert.Nil(t, decoded["cashFlow"])
	assert.Equal(t, []any{}, decoded["trend"])
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    float64
	}{
		{"half way", "50", "100", 50},
		{"capped at 100", "150", "100", 100},
		{"exactly reached", "100", "100", 100},
		{"zero target, zero current", "0", "0", 0},
		{"zero target, positive current", "50", "0", 100},
		{"negative target", "50", "-10", 100},
		{"malformed inputs", "abc", "xyz", 0},
		{"empty inputs", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateProgress(tt.current, tt.target), 1e-9)
		})
	}
}

func TestEstimateYearsToFire(t *testing.T) {
	assert.Nil(t, EstimateYearsToFire("500000", "1000000", "0"))
	assert.Nil(t, EstimateYearsToFire("500000", "1000000", "-100"))

	got := EstimateYearsToFire("1000000", "1000000", "1000")
	if assert.NotNil(t, got) {
		assert.Zero(t, *got)
	}

	got = EstimateYearsToFire("400000", "1000000", "5000")
	if assert.NotNil(t, got) {
		assert.InDelta(t, 10.0, *got, 1e-9)
	}

	// Already past the target clamps the remainder at zero.
	got = EstimateYearsToFire("1200000", "1000000", "1000")
	if assert.NotNil(t, got) {
		assert.Zero(t, *got)
	}
}
