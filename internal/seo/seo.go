// Package seo builds the sitemap and RSS feed from published posts. Both
// documents are rebuilt on a schedule and cached; requests always serve
// the cached bytes so a slow database never blocks a crawler.
package seo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/models"
	"github.com/pathtwo/pathtwo/internal/repository"
)

// Generator renders and caches sitemap.xml and feed.xml.
type Generator struct {
	siteURL string
	repo    *repository.Repository
	log     *logrus.Logger

	mu      sync.RWMutex
	sitemap []byte
	feed    []byte
}

// NewGenerator creates a generator rooted at siteURL (no trailing slash).
func NewGenerator(siteURL string, repo *repository.Repository, log *logrus.Logger) *Generator {
	return &Generator{siteURL: siteURL, repo: repo, log: log}
}

// Refresh rebuilds both documents from the current published posts.
func (g *Generator) Refresh(ctx context.Context) error {
	posts, err := g.repo.ListPosts(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to load posts for seo refresh: %w", err)
	}

	sitemap, err := BuildSitemap(g.siteURL, posts)
	if err != nil {
		return err
	}
	feed, err := BuildFeed(g.siteURL, posts)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.sitemap = sitemap
	g.feed = feed
	g.mu.Unlock()

	g.log.Infof("Rebuilt sitemap and feed from %d published posts", len(posts))
	return nil
}

// Sitemap returns the cached sitemap, or nil before the first refresh.
func (g *Generator) Sitemap() []byte {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sitemap
}

// Feed returns the cached RSS feed, or nil before the first refresh.
func (g *Generator) Feed() []byte {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.feed
}

// BuildSitemap renders a sitemap.org urlset covering the home page, the
// blog index and every published post.
func BuildSitemap(siteURL string, posts []models.BlogPost) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addURL := func(loc string, lastmod *time.Time, priority string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(loc)
		if lastmod != nil {
			u.CreateElement("lastmod").SetText(lastmod.Format("2006-01-02"))
		}
		u.CreateElement("priority").SetText(priority)
	}

	addURL(siteURL+"/", nil, "1.0")
	addURL(siteURL+"/blog", nil, "0.8")
	for i := range posts {
		addURL(siteURL+"/blog/"+posts[i].Slug, posts[i].PublishedAt, "0.6")
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}
	return out, nil
}

// BuildFeed renders an RSS 2.0 feed of the published posts, which arrive
// newest first from the store.
func BuildFeed(siteURL string, posts []models.BlogPost) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText("PathTwo")
	channel.CreateElement("link").SetText(siteURL)
	channel.CreateElement("description").SetText("Personal finance and the path to financial independence")

	for i := range posts {
		p := &posts[i]
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(p.Title)
		item.CreateElement("link").SetText(siteURL + "/blog/" + p.Slug)
		item.CreateElement("guid").SetText(siteURL + "/blog/" + p.Slug)
		item.CreateElement("description").SetText(p.Excerpt)
		if p.PublishedAt != nil {
			item.CreateElement("pubDate").SetText(p.PublishedAt.Format(time.RFC1123Z))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render feed: %w", err)
	}
	return out, nil
}
