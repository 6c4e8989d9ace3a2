package contact

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/pubsub"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Notifier emails every received contact message to the salon's inbox.
type Notifier struct {
	sender  domain.EmailSender
	inbox   func() string
	siteURL string
}

// NewNotifier creates a notifier. inbox is resolved per message so that a
// reloaded catalog can change the destination. siteURL is the site's public
// base URL, linked from every email; empty leaves the link out.
func NewNotifier(sender domain.EmailSender, inbox func() string, siteURL string) *Notifier {
	return &Notifier{sender: sender, inbox: inbox, siteURL: strings.TrimRight(siteURL, "/")}
}

// Start subscribes the notifier to MessageReceived until ctx is canceled.
func (n *Notifier) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, MessageReceived, n.Handle)
}

// Handle sends one message.
func (n *Notifier) Handle(ctx context.Context, msg domain.ContactMessage) error {
	to := n.inbox()
	if to == "" {
		slog.WarnContext(ctx, "No contact inbox configured, dropping message", "id", msg.ID)
		return nil
	}

	var body bytes.Buffer
	if err := messageBody(msg, n.siteURL).Render(&body); err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	subject := fmt.Sprintf("New message from %s", msg.Name)
	if err := n.sender.Send(ctx, to, subject, body.String()); err != nil {
		return fmt.Errorf("failed to email contact message %s: %w", msg.ID, err)
	}
	return nil
}

func messageBody(msg domain.ContactMessage, siteURL string) g.Node {
	phone := msg.Phone
	if phone == "" {
		phone = "not given"
	}
	return h.Div(
		h.H2(g.Text("New contact form message")),
		h.Ul(
			h.Li(h.Strong(g.Text("Name: ")), g.Text(msg.Name)),
			h.Li(h.Strong(g.Text("Email: ")), h.A(h.Href("mailto:"+msg.Email), g.Text(msg.Email))),
			h.Li(h.Strong(g.Text("Phone: ")), g.Text(phone)),
			h.Li(h.Strong(g.Text("Received: ")), g.Text(msg.ReceivedAt.Format("2006-01-02 15:04 MST"))),
		),
		h.P(g.Text(msg.Message)),
		g.If(siteURL != "", h.P(
			h.Small(g.Text("Sent from the contact form at "), h.A(h.Href(siteURL+"/#contact"), g.Text(siteURL))),
		)),
	)
}
