package service

import (
	"context"
	"fmt"

	"github.com/pathtwo/pathtwo/internal/models"
	"github.com/pathtwo/pathtwo/internal/wealth"
)

// ListGoals returns all goals with their progress percentage computed
// from the stored amounts.
func (s *Service) ListGoals(ctx context.Context) ([]models.FinancialGoal, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].Progress = wealth.CalculateProgress(goals[i].CurrentAmount, goals[i].TargetAmount)
	}
	return goals, nil
}

// GetGoal returns a single goal with computed progress.
func (s *Service) GetGoal(ctx context.Context, id int64) (*models.FinancialGoal, error) {
	goal, err := s.repo.FindGoalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	goal.Progress = wealth.CalculateProgress(goal.CurrentAmount, goal.TargetAmount)
	return goal, nil
}

// CreateGoal stores a new goal.
func (s *Service) CreateGoal(ctx context.Context, g *models.FinancialGoal) error {
	if !g.Category.Valid() {
		return fmt.Errorf("invalid category %q", g.Category)
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return err
	}
	g.Progress = wealth.CalculateProgress(g.CurrentAmount, g.TargetAmount)
	s.log.Infof("Goal created: %s", g.Title)
	return nil
}

// UpdateGoal replaces an existing goal.
func (s *Service) UpdateGoal(ctx context.Context, g *models.FinancialGoal) error {
	if !g.Category.Valid() {
		return fmt.Errorf("invalid category %q", g.Category)
	}
	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return err
	}
	g.Progress = wealth.CalculateProgress(g.CurrentAmount, g.TargetAmount)
	s.log.Infof("Goal %d updated", g.ID)
	return nil
}

// DeleteGoal removes a goal.
func (s *Service) DeleteGoal(ctx context.Context, id int64) error {
	if err := s.repo.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Goal %d deleted", id)
	return nil
}
