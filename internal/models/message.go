package models

import "time"

// ContactMessage is a message submitted through the public contact form.
// PublicID is a UUID used in admin URLs instead of the database id.
type ContactMessage struct {
	ID        int64     `json:"id"`
	PublicID  string    `json:"publicId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"created_at"`
}
