// Package related ranks blog posts by how closely they relate to an
// anchor post. The score is deterministic and ties keep input order, so
// the same candidate set always produces the same ranking.
package related

import (
	"sort"
	"time"

	"github.com/pathtwo/pathtwo/internal/models"
)

const (
	sameCategoryScore = 10
	sameSeriesScore   = 20
	sharedTagScore    = 5
	recentScore       = 2
	recentWindow      = 30 * 24 * time.Hour
)

// Score computes the relatedness of candidate to anchor: 10 for the same
// category, 20 for the same series, 5 per shared tag, and 2 when both were
// published within 30 days of each other.
func Score(candidate, anchor *models.BlogPost) int {
	score := 0
	if anchor.Category != "" && candidate.Category == anchor.Category {
		score += sameCategoryScore
	}
	if anchor.SeriesID != "" && candidate.SeriesID == anchor.SeriesID {
		score += sameSeriesScore
	}
	score += sharedTagScore * sharedTags(candidate.Tags, anchor.Tags)
	if candidate.PublishedAt != nil && anchor.PublishedAt != nil {
		gap := candidate.PublishedAt.Sub(*anchor.PublishedAt)
		if gap < 0 {
			gap = -gap
		}
		if gap <= recentWindow {
			score += recentScore
		}
	}
	return score
}

// Rank sorts candidates by descending score with a stable tie-break on the
// original input order, skips the anchor itself, and truncates to limit
// when limit is positive.
func Rank(anchor *models.BlogPost, candidates []models.BlogPost, limit int) []models.BlogPost {
	ranked := make([]models.BlogPost, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == anchor.ID {
			continue
		}
		ranked = append(ranked, c)
	}
	scores := make(map[int64]int, len(ranked))
	for i := range ranked {
		scores[ranked[i].ID] = Score(&ranked[i], anchor)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func sharedTags(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(a))
	for _, t := range a {
		seen[t] = struct{}{}
	}
	count := 0
	for _, t := range b {
		if _, ok := seen[t]; ok {
			count++
			delete(seen, t)
		}
	}
	return count
}
