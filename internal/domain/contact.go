package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message left through the site's contact form.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
