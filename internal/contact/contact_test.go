package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, body string
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (r *recordingSender) Send(ctx context.Context, to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentEmail{to, subject, body})
	return nil
}

func (r *recordingSender) emails() []sentEmail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentEmail(nil), r.sent...)
}

func TestSubmit_PublishesAndNotifies(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{}
	notifier := NewNotifier(sender, func() string { return "owner@example.com" }, "https://swatimakeover.com/")
	require.NoError(t, notifier.Start(ctx, bus))

	svc := NewService(bus)
	fixed := time.Date(2024, 9, 23, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	msg, err := svc.Submit(ctx, Submission{
		Name:    "  Emily R. ",
		Email:   "emily@example.com",
		Message: "Do you have time for a <b>balayage</b> on Friday?",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, "Emily R.", msg.Name)
	assert.Equal(t, fixed, msg.ReceivedAt)

	require.Eventually(t, func() bool { return len(sender.emails()) == 1 }, 2*time.Second, 10*time.Millisecond)
	email := sender.emails()[0]
	assert.Equal(t, "owner@example.com", email.to)
	assert.Equal(t, "New message from Emily R.", email.subject)
	assert.Contains(t, email.body, "emily@example.com")
	assert.Contains(t, email.body, "not given")
	assert.Contains(t, email.body, "&lt;b&gt;balayage&lt;/b&gt;", "message text must be escaped")
	assert.Contains(t, email.body, `href="https://swatimakeover.com/#contact"`)
}

func TestSubmit_RejectsBlankFields(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	svc := NewService(bus)
	_, err := svc.Submit(context.Background(), Submission{Name: "Sophia", Email: "  ", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrInvalidSubmission)
}

func TestNotifier_Handle(t *testing.T) {
	msg := domain.ContactMessage{Name: "Michael S.", Email: "m@example.com", Phone: "555-0100", Message: "Hello"}

	t.Run("no inbox drops the message", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewNotifier(sender, func() string { return "" }, "")
		require.NoError(t, n.Handle(context.Background(), msg))
		assert.Empty(t, sender.emails())
	})

	t.Run("sender failure is returned", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("smtp down")}
		n := NewNotifier(sender, func() string { return "owner@example.com" }, "")
		assert.ErrorContains(t, n.Handle(context.Background(), msg), "smtp down")
	})

	t.Run("phone is included", func(t *testing.T) {
		sender := &recordingSender{}
		n := NewNotifier(sender, func() string { return "owner@example.com" }, "")
		require.NoError(t, n.Handle(context.Background(), msg))
		assert.Contains(t, sender.emails()[0].body, "555-0100")
		assert.NotContains(t, sender.emails()[0].body, "Sent from the contact form")
	})
}
