// Package contact accepts messages from the site's contact form and forwards
// them to the salon's inbox.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/pubsub"
)

// MessageReceived is published once per accepted contact form submission.
var MessageReceived = pubsub.NewEvent[domain.ContactMessage]("contact.message.received")

// Submission is the raw form input.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Service accepts submissions and publishes them on the bus.
type Service struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewService creates a contact service publishing to pub.
func NewService(pub pubsub.Publisher) *Service {
	return &Service{pub: pub, now: time.Now}
}

// Submit stamps the submission with an id and receive time and publishes it.
// Blank required fields are rejected with domain.ErrInvalidSubmission.
func (s *Service) Submit(ctx context.Context, sub Submission) (domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Phone:   strings.TrimSpace(sub.Phone),
		Message: strings.TrimSpace(sub.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return domain.ContactMessage{}, fmt.Errorf("%w: name, email and message are required", domain.ErrInvalidSubmission)
	}

	msg.ID = uuid.New()
	msg.ReceivedAt = s.now().UTC()

	if err := pubsub.Publish(ctx, s.pub, MessageReceived, msg); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("failed to publish contact message: %w", err)
	}
	slog.InfoContext(ctx, "Contact message accepted", "id", msg.ID)
	return msg, nil
}
