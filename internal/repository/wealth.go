package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pathtwo/pathtwo/internal/models"
)

const wealthColumns = `
	id, date, category, net_worth, investments, cash, liabilities,
	fire_target, savings_rate,
	stocks, bonds, real_estate, crypto, commodities, alternative_investments,
	mortgage, credit_cards, student_loans, auto_loans,
	monthly_income, monthly_expenses, monthly_savings,
	created_at, updated_at`

func scanWealthEntry(row interface{ Scan(...any) error }) (*models.WealthEntry, error) {
	e := &models.WealthEntry{}
	err := row.Scan(
		&e.ID, &e.Date, &e.Category, &e.NetWorth, &e.Investments, &e.Cash, &e.Liabilities,
		&e.FireTarget, &e.SavingsRate,
		&e.Stocks, &e.Bonds, &e.RealEstate, &e.Crypto, &e.Commodities, &e.AlternativeInvestments,
		&e.Mortgage, &e.CreditCards, &e.StudentLoans, &e.AutoLoans,
		&e.MonthlyIncome, &e.MonthlyExpenses, &e.MonthlySavings,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListWealthEntries retrieves all entries for a category ordered by date
// ascending. An empty result is not an error.
func (r *Repository) ListWealthEntries(ctx context.Context, category models.WealthCategory) ([]models.WealthEntry, error) {
	query := `
		SELECT` + wealthColumns + `
		FROM wealth_entries
		WHERE category = $1
		ORDER BY date ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list wealth entries: %w", err)
	}
	defer rows.Close()

	var entries []models.WealthEntry
	for rows.Next() {
		e, err := scanWealthEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wealth entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wealth entries: %w", err)
	}
	return entries, nil
}

// LatestWealthEntry retrieves the chronologically last entry for a category.
func (r *Repository) LatestWealthEntry(ctx context.Context, category models.WealthCategory) (*models.WealthEntry, error) {
	query := `
		SELECT` + wealthColumns + `
		FROM wealth_entries
		WHERE category = $1
		ORDER BY date DESC, id DESC
		LIMIT 1`
	e, err := scanWealthEntry(r.db.QueryRowContext(ctx, query, category))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest wealth entry: %w", err)
	}
	return e, nil
}

// CreateWealthEntry inserts a new snapshot and fills in the generated fields.
func (r *Repository) CreateWealthEntry(ctx context.Context, e *models.WealthEntry) error {
	query := `
		INSERT INTO wealth_entries (
			date, category, net_worth, investments, cash, liabilities,
			fire_target, savings_rate,
			stocks, bonds, real_estate, crypto, commodities, alternative_investments,
			mortgage, credit_cards, student_loans, auto_loans,
			monthly_income, monthly_expenses, monthly_savings,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		e.Date, e.Category, e.NetWorth, e.Investments, e.Cash, e.Liabilities,
		e.FireTarget, e.SavingsRate,
		e.Stocks, e.Bonds, e.RealEstate, e.Crypto, e.Commodities, e.AlternativeInvestments,
		e.Mortgage, e.CreditCards, e.StudentLoans, e.AutoLoans,
		e.MonthlyIncome, e.MonthlyExpenses, e.MonthlySavings,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wealth entry: %w", err)
	}
	return nil
}

// UpdateWealthEntry replaces every mutable field of an existing snapshot.
func (r *Repository) UpdateWealthEntry(ctx context.Context, e *models.WealthEntry) error {
	query := `
		UPDATE wealth_entries SET
			date = $2, category = $3, net_worth = $4, investments = $5,
			cash = $6, liabilities = $7, fire_target = $8, savings_rate = $9,
			stocks = $10, bonds = $11, real_estate = $12, crypto = $13,
			commodities = $14, alternative_investments = $15,
			mortgage = $16, credit_cards = $17, student_loans = $18, auto_loans = $19,
			monthly_income = $20, monthly_expenses = $21, monthly_savings = $22,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		e.ID, e.Date, e.Category, e.NetWorth, e.Investments,
		e.Cash, e.Liabilities, e.FireTarget, e.SavingsRate,
		e.Stocks, e.Bonds, e.RealEstate, e.Crypto,
		e.Commodities, e.AlternativeInvestments,
		e.Mortgage, e.CreditCards, e.StudentLoans, e.AutoLoans,
		e.MonthlyIncome, e.MonthlyExpenses, e.MonthlySavings,
	).Scan(&e.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update wealth entry: %w", err)
	}
	return nil
}

// DeleteWealthEntry removes a snapshot by id.
func (r *Repository) DeleteWealthEntry(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wealth_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wealth entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete wealth entry: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
