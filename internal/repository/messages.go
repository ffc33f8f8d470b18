package repository

import (
	"context"
	"fmt"

	"github.com/pathtwo/pathtwo/internal/models"
)

const messageColumns = `
	id, public_id, name, email, subject, body, is_read, created_at`

func scanMessage(row interface{ Scan(...any) error }) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := row.Scan(
		&m.ID, &m.PublicID, &m.Name, &m.Email, &m.Subject, &m.Body,
		&m.IsRead, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMessages retrieves contact messages newest first.
func (r *Repository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT` + messageColumns + `
		FROM contact_messages
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ContactMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}

// CreateMessage inserts a contact-form submission.
func (r *Repository) CreateMessage(ctx context.Context, m *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (public_id, name, email, subject, body, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		m.PublicID, m.Name, m.Email, m.Subject, m.Body,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// MarkMessageRead flags a message as read by its public id.
func (r *Repository) MarkMessageRead(ctx context.Context, publicID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE public_id = $1`, publicID)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMessage removes a message by its public id.
func (r *Repository) DeleteMessage(ctx context.Context, publicID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contact_messages WHERE public_id = $1`, publicID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
