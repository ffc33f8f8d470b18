package models

import "time"

// WealthCategory partitions snapshots by whose finances they describe.
// "Both" is an independently recorded combined snapshot, not a computed
// sum of "His" + "Her".
type WealthCategory string

const (
	CategoryHis  WealthCategory = "His"
	CategoryHer  WealthCategory = "Her"
	CategoryBoth WealthCategory = "Both"
)

// Categories lists every valid wealth category in display order.
var Categories = []WealthCategory{CategoryHis, CategoryHer, CategoryBoth}

// Valid reports whether c is one of the known categories.
func (c WealthCategory) Valid() bool {
	switch c {
	case CategoryHis, CategoryHer, CategoryBoth:
		return true
	}
	return false
}

// WealthEntry is one recorded point-in-time snapshot of net worth and its
// components for a category. Monetary fields are decimal strings as stored;
// parsing and tolerance for malformed values belong to the wealth package,
// not to this type.
type WealthEntry struct {
	ID       int64          `json:"id"`
	Date     time.Time      `json:"date"`
	Category WealthCategory `json:"category"`

	NetWorth    string `json:"netWorth"`
	Investments string `json:"investments"`
	Cash        string `json:"cash"`
	Liabilities string `json:"liabilities"`

	FireTarget  string `json:"fireTarget"`
	SavingsRate string `json:"savingsRate"`

	// Asset sub-breakdown. The sum is not required to equal Investments.
	Stocks                 string `json:"stocks"`
	Bonds                  string `json:"bonds"`
	RealEstate             string `json:"realEstate"`
	Crypto                 string `json:"crypto"`
	Commodities            string `json:"commodities"`
	AlternativeInvestments string `json:"alternativeInvestments"`

	// Debt sub-breakdown. The sum is not required to equal Liabilities.
	Mortgage     string `json:"mortgage"`
	CreditCards  string `json:"creditCards"`
	StudentLoans string `json:"studentLoans"`
	AutoLoans    string `json:"autoLoans"`

	// Optional cash-flow figures; empty string means "not recorded",
	// which is distinct from "0".
	MonthlyIncome   string `json:"monthlyIncome"`
	MonthlyExpenses string `json:"monthlyExpenses"`
	MonthlySavings  string `json:"monthlySavings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
