package repository

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist. Handlers
// map it to a 404; it stays distinguishable from valid empty data.
var ErrNotFound = errors.New("not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}
