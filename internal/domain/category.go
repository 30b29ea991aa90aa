package domain

import (
	"time"
)

// Category groups hustles by theme (e.g. delivery, tutoring, freelancing).
// Categories are never deleted.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
}
