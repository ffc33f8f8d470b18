package related

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtwo/pathtwo/internal/models"
)

func published(year, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestScoreComponents(t *testing.T) {
	anchor := &models.BlogPost{
		ID:          1,
		Category:    "investing",
		SeriesID:    "fire-basics",
		Tags:        []string{"fire", "index-funds", "savings"},
		PublishedAt: published(2025, 6, 1),
	}

	tests := []struct {
		name      string
		candidate models.BlogPost
		want      int
	}{
		{
			"unrelated",
			models.BlogPost{ID: 2, Category: "travel"},
			0,
		},
		{
			"same category",
			models.BlogPost{ID: 2, Category: "investing"},
			10,
		},
		{
			"same series",
			models.BlogPost{ID: 2, SeriesID: "fire-basics"},
			20,
		},
		{
			"two shared tags",
			models.BlogPost{ID: 2, Tags: []string{"fire", "savings", "crypto"}},
			10,
		},
		{
			"published within 30 days",
			models.BlogPost{ID: 2, PublishedAt: published(2025, 6, 20)},
			2,
		},
		{
			"published too far apart",
			models.BlogPost{ID: 2, PublishedAt: published(2025, 8, 1)},
			0,
		},
		{
			"everything at once",
			models.BlogPost{
				ID:          2,
				Category:    "investing",
				SeriesID:    "fire-basics",
				Tags:        []string{"fire", "index-funds"},
				PublishedAt: published(2025, 5, 15),
			},
			10 + 20 + 5*2 + 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(&tt.candidate, anchor))
		})
	}
}

func TestScoreEmptySeriesDoesNotMatch(t *testing.T) {
	anchor := &models.BlogPost{ID: 1}
	candidate := &models.BlogPost{ID: 2}
	// Two posts without a series (or category) share nothing.
	assert.Equal(t, 0, Score(candidate, anchor))
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	anchor := &models.BlogPost{ID: 1, Category: "investing", SeriesID: "fire-basics"}
	candidates := []models.BlogPost{
		{ID: 2, Category: "travel"},
		{ID: 3, Category: "investing", SeriesID: "fire-basics"},
		{ID: 4, Category: "investing"},
	}

	got := Rank(anchor, candidates, 0)
	require.Len(t, got, 3)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
	assert.Equal(t, int64(2), got[2].ID)
}

func TestRankTieBreakPreservesInputOrder(t *testing.T) {
	anchor := &models.BlogPost{ID: 1, Category: "investing"}
	candidates := []models.BlogPost{
		{ID: 5, Category: "investing"},
		{ID: 3, Category: "investing"},
		{ID: 9, Category: "investing"},
	}

	got := Rank(anchor, candidates, 0)
	require.Len(t, got, 3)
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(9), got[2].ID)
}

func TestRankSkipsAnchorAndTruncates(t *testing.T) {
	anchor := &models.BlogPost{ID: 1, Category: "investing"}
	candidates := []models.BlogPost{
		{ID: 1, Category: "investing"}, // the anchor itself
		{ID: 2, Category: "investing"},
		{ID: 3, Category: "investing"},
		{ID: 4, Category: "travel"},
	}

	got := Rank(anchor, candidates, 2)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}
