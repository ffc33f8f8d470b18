package models

import "time"

// BlogPost is a published or draft article. Category, SeriesID, Tags and
// PublishedAt feed the related-post ranking; the rest is content.
type BlogPost struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Category    string     `json:"category"`
	SeriesID    string     `json:"seriesId,omitempty"`
	Tags        []string   `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
