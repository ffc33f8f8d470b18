package models

import "time"

// FinancialGoal is a savings or payoff target tracked alongside wealth
// snapshots. Amounts are decimal strings as stored; Progress is computed
// per request and never persisted.
type FinancialGoal struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Category      WealthCategory `json:"category"`
	GoalType      string         `json:"goalType"`
	TargetAmount  string         `json:"targetAmount"`
	CurrentAmount string         `json:"currentAmount"`
	TargetDate    *time.Time     `json:"targetDate,omitempty"`
	Priority      int            `json:"priority"`
	IsCompleted   bool           `json:"isCompleted"`
	Progress      float64        `json:"progress"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
