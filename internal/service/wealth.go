package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/models"
	"github.com/pathtwo/pathtwo/internal/wealth"
)

// WealthSummary builds the dashboard summary for one category from its
// current entries.
func (s *Service) WealthSummary(ctx context.Context, category models.WealthCategory) (*models.WealthSummaryCategory, error) {
	entries, err := s.repo.ListWealthEntries(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.engine.BuildSummary(category, entries), nil
}

// WealthSummaries builds summaries for every category in display order.
func (s *Service) WealthSummaries(ctx context.Context) ([]*models.WealthSummaryCategory, error) {
	summaries := make([]*models.WealthSummaryCategory, 0, len(models.Categories))
	for _, category := range models.Categories {
		summary, err := s.WealthSummary(ctx, category)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// WealthInsights builds the admin insights view: every category summary
// with a years-to-FIRE projection from that category's latest entry.
func (s *Service) WealthInsights(ctx context.Context) ([]models.WealthInsight, error) {
	insights := make([]models.WealthInsight, 0, len(models.Categories))
	for _, category := range models.Categories {
		entries, err := s.repo.ListWealthEntries(ctx, category)
		if err != nil {
			return nil, err
		}
		insight := models.WealthInsight{Summary: s.engine.BuildSummary(category, entries)}
		if len(entries) > 0 {
			latest := entries[len(entries)-1]
			insight.YearsToFire = wealth.EstimateYearsToFire(
				latest.NetWorth, latest.FireTarget, latest.MonthlySavings)
		}
		insights = append(insights, insight)
	}
	return insights, nil
}

// LatestWealth returns the raw latest entry for a category, or
// repository.ErrNotFound when no entries exist.
func (s *Service) LatestWealth(ctx context.Context, category models.WealthCategory) (*models.WealthEntry, error) {
	return s.repo.LatestWealthEntry(ctx, category)
}

// CreateWealthEntry stores a new snapshot.
func (s *Service) CreateWealthEntry(ctx context.Context, e *models.WealthEntry) error {
	if !e.Category.Valid() {
		return fmt.Errorf("invalid category %q", e.Category)
	}
	if err := s.repo.CreateWealthEntry(ctx, e); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"id":       e.ID,
		"category": e.Category,
		"date":     e.Date,
	}).Info("Wealth entry created")
	return nil
}

// UpdateWealthEntry replaces an existing snapshot.
func (s *Service) UpdateWealthEntry(ctx context.Context, e *models.WealthEntry) error {
	if !e.Category.Valid() {
		return fmt.Errorf("invalid category %q", e.Category)
	}
	if err := s.repo.UpdateWealthEntry(ctx, e); err != nil {
		return err
	}
	s.log.Infof("Wealth entry %d updated", e.ID)
	return nil
}

// DeleteWealthEntry removes a snapshot.
func (s *Service) DeleteWealthEntry(ctx context.Context, id int64) error {
	if err := s.repo.DeleteWealthEntry(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Wealth entry %d deleted", id)
	return nil
}
