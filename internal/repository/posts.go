package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/pathtwo/pathtwo/internal/models"
)

const postColumns = `
	id, slug, title, excerpt, body, cover_image, category, series_id, tags,
	is_published, published_at, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Body, &p.CoverImage,
		&p.Category, &p.SeriesID, pq.Array(&p.Tags),
		&p.IsPublished, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListPosts retrieves posts newest first. With publishedOnly set, drafts
// are excluded and ordering is by publish date.
func (r *Repository) ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	query := `
		SELECT` + postColumns + `
		FROM blog_posts
		ORDER BY created_at DESC`
	if publishedOnly {
		query = `
			SELECT` + postColumns + `
			FROM blog_posts
			WHERE is_published = TRUE
			ORDER BY published_at DESC`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}
	return posts, nil
}

// FindPostBySlug retrieves a single post by its slug.
func (r *Repository) FindPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `
		SELECT` + postColumns + `
		FROM blog_posts
		WHERE slug = $1`
	p, err := scanPost(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return p, nil
}

// CreatePost inserts a new post and fills in the generated fields.
func (r *Repository) CreatePost(ctx context.Context, p *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (
			slug, title, excerpt, body, cover_image, category, series_id, tags,
			is_published, published_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		p.Slug, p.Title, p.Excerpt, p.Body, p.CoverImage, p.Category,
		p.SeriesID, pq.Array(p.Tags), p.IsPublished, p.PublishedAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// UpdatePost replaces every mutable field of an existing post.
func (r *Repository) UpdatePost(ctx context.Context, p *models.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			slug = $2, title = $3, excerpt = $4, body = $5, cover_image = $6,
			category = $7, series_id = $8, tags = $9, is_published = $10,
			published_at = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Body, p.CoverImage,
		p.Category, p.SeriesID, pq.Array(p.Tags), p.IsPublished, p.PublishedAt,
	).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// DeletePost removes a post by id.
func (r *Repository) DeletePost(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
