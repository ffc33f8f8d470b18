package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Our First 100k", "our-first-100k"},
		{"FIRE: What It Means (To Us)", "fire-what-it-means-to-us"},
		{"  spaced   out  ", "spaced-out"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}
