package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pathtwo/pathtwo/internal/models"
	"github.com/pathtwo/pathtwo/internal/related"
	"github.com/pathtwo/pathtwo/internal/repository"
)

// ListPosts returns posts for the public blog (published only) or for the
// admin area (everything, drafts included).
func (s *Service) ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	return s.repo.ListPosts(ctx, publishedOnly)
}

// GetPost returns a single post by slug. Unpublished posts are only
// visible when includeDrafts is set (admin requests).
func (s *Service) GetPost(ctx context.Context, slug string, includeDrafts bool) (*models.BlogPost, error) {
	post, err := s.repo.FindPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished && !includeDrafts {
		// Drafts are indistinguishable from missing posts for the public.
		return nil, repository.ErrNotFound
	}
	return post, nil
}

// RelatedPosts ranks other published posts by relatedness to the post
// with the given slug.
func (s *Service) RelatedPosts(ctx context.Context, slug string, limit int) ([]models.BlogPost, error) {
	anchor, err := s.GetPost(ctx, slug, false)
	if err != nil {
		return nil, err
	}
	candidates, err := s.repo.ListPosts(ctx, true)
	if err != nil {
		return nil, err
	}
	return related.Rank(anchor, candidates, limit), nil
}

// CreatePost stores a new post. The slug is derived from the title when
// not supplied, and publishing stamps PublishedAt once.
func (s *Service) CreatePost(ctx context.Context, p *models.BlogPost) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Slug == "" {
		return fmt.Errorf("post needs a title or slug")
	}
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		return err
	}
	s.log.Infof("Post created: %s", p.Slug)
	return nil
}

// UpdatePost replaces an existing post, stamping PublishedAt on the first
// transition to published.
func (s *Service) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	if err := s.repo.UpdatePost(ctx, p); err != nil {
		return err
	}
	s.log.Infof("Post updated: %s", p.Slug)
	return nil
}

// DeletePost removes a post.
func (s *Service) DeletePost(ctx context.Context, id int64) error {
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Post %d deleted", id)
	return nil
}

// Slugify lowercases a title and collapses everything that is not a letter
// or digit into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
