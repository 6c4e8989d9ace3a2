package hub

import (
	"context"
	"log/slog"
)

// Subscriber represents a single client listening for broadcasts.
// It contains the channel through which the Hub sends byte slices to the client.
type Subscriber struct {
	// Send is a buffered channel of outbound messages. The Hub sends messages
	// to this channel, and the client is responsible for reading from it.
	Send chan []byte
}

// NewSubscriber creates a subscriber with a send buffer of size n.
func NewSubscriber(n int) *Subscriber {
	return &Subscriber{Send: make(chan []byte, n)}
}

// Hub maintains the set of active subscribers and broadcasts messages to them.
type Hub struct {
	// Registered subscribers.
	subscribers map[*Subscriber]bool

	// Broadcast is the channel for outbound messages. Any component can send
	// a message to this channel to have it delivered to all subscribers.
	Broadcast chan []byte

	// Register is a channel for new subscribers to register with the hub.
	Register chan *Subscriber

	// Unregister is a channel for subscribers to unregister from the hub.
	Unregister chan *Subscriber

	done chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
		done:        make(chan struct{}),
	}
}

// Done is closed once Run has returned. Senders on Register and Unregister
// select on it so they never block on a stopped hub.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Run processes registrations and broadcasts until ctx is canceled. It must be
// run in its own goroutine. On exit every remaining subscriber's channel is
// closed.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for subscriber := range h.subscribers {
			close(subscriber.Send)
			delete(h.subscribers, subscriber)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case subscriber := <-h.Register:
			h.subscribers[subscriber] = true
			slog.Debug("New subscriber registered", "total_subscribers", len(h.subscribers))

		case subscriber := <-h.Unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Send)
				slog.Debug("Subscriber unregistered", "total_subscribers", len(h.subscribers))
			}

		case message := <-h.Broadcast:
			slog.Debug("Broadcasting message", "recipient_count", len(h.subscribers))
			for subscriber := range h.subscribers {
				// Use a non-blocking send. If the subscriber's buffer is full,
				// the client is lagging or gone.
				select {
				case subscriber.Send <- message:
				default:
					close(subscriber.Send)
					delete(h.subscribers, subscriber)
					slog.Warn("Unregistering slow subscriber", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}
