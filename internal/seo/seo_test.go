package seo

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtwo/pathtwo/internal/models"
)

func testPosts() []models.BlogPost {
	published := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	return []models.BlogPost{
		{Slug: "first-100k", Title: "Our First 100k", Excerpt: "How we got there", PublishedAt: &published},
		{Slug: "index-funds", Title: "Why Index Funds", Excerpt: "Boring wins"},
	}
}

func TestBuildSitemap(t *testing.T) {
	out, err := BuildSitemap("https://pathtwo.example", testPosts())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	locs := doc.FindElements("//urlset/url/loc")
	require.Len(t, locs, 4)
	assert.Equal(t, "https://pathtwo.example/", locs[0].Text())
	assert.Equal(t, "https://pathtwo.example/blog", locs[1].Text())
	assert.Equal(t, "https://pathtwo.example/blog/first-100k", locs[2].Text())
	assert.Equal(t, "https://pathtwo.example/blog/index-funds", locs[3].Text())

	lastmods := doc.FindElements("//urlset/url/lastmod")
	require.Len(t, lastmods, 1)
	assert.Equal(t, "2025-07-01", lastmods[0].Text())
}

func TestBuildSitemapEmpty(t *testing.T) {
	out, err := BuildSitemap("https://pathtwo.example", nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	// Home and blog index are always present.
	assert.Len(t, doc.FindElements("//urlset/url"), 2)
}

func TestBuildFeed(t *testing.T) {
	out, err := BuildFeed("https://pathtwo.example", testPosts())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	items := doc.FindElements("//rss/channel/item")
	require.Len(t, items, 2)
	assert.Equal(t, "Our First 100k", items[0].FindElement("title").Text())
	assert.Equal(t, "https://pathtwo.example/blog/first-100k", items[0].FindElement("link").Text())
	require.NotNil(t, items[0].FindElement("pubDate"))
	// Unpublished timestamp is simply omitted.
	assert.Nil(t, items[1].FindElement("pubDate"))
}
