package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pathtwo/pathtwo/internal/models"
)

const goalColumns = `
	id, title, category, goal_type, target_amount, current_amount,
	target_date, priority, is_completed, created_at, updated_at`

func scanGoal(row interface{ Scan(...any) error }) (*models.FinancialGoal, error) {
	g := &models.FinancialGoal{}
	err := row.Scan(
		&g.ID, &g.Title, &g.Category, &g.GoalType, &g.TargetAmount,
		&g.CurrentAmount, &g.TargetDate, &g.Priority, &g.IsCompleted,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListGoals retrieves all goals ordered by priority, then creation time.
func (r *Repository) ListGoals(ctx context.Context) ([]models.FinancialGoal, error) {
	query := `
		SELECT` + goalColumns + `
		FROM financial_goals
		ORDER BY priority ASC, created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []models.FinancialGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}
	return goals, nil
}

// FindGoalByID retrieves a single goal.
func (r *Repository) FindGoalByID(ctx context.Context, id int64) (*models.FinancialGoal, error) {
	query := `
		SELECT` + goalColumns + `
		FROM financial_goals
		WHERE id = $1`
	g, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return g, nil
}

// CreateGoal inserts a new goal and fills in the generated fields.
func (r *Repository) CreateGoal(ctx context.Context, g *models.FinancialGoal) error {
	query := `
		INSERT INTO financial_goals (
			title, category, goal_type, target_amount, current_amount,
			target_date, priority, is_completed, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		g.Title, g.Category, g.GoalType, g.TargetAmount, g.CurrentAmount,
		g.TargetDate, g.Priority, g.IsCompleted,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// UpdateGoal replaces every mutable field of an existing goal.
func (r *Repository) UpdateGoal(ctx context.Context, g *models.FinancialGoal) error {
	query := `
		UPDATE financial_goals SET
			title = $2, category = $3, goal_type = $4, target_amount = $5,
			current_amount = $6, target_date = $7, priority = $8,
			is_completed = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		g.ID, g.Title, g.Category, g.GoalType, g.TargetAmount,
		g.CurrentAmount, g.TargetDate, g.Priority, g.IsCompleted,
	).Scan(&g.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal by id.
func (r *Repository) DeleteGoal(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM financial_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
