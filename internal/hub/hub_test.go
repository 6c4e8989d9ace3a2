package hub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, s *Subscriber) ([]byte, bool) {
	t.Helper()
	select {
	case msg, ok := <-s.Send:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting on subscriber channel")
		return nil, false
	}
}

func TestHub_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	a, b := NewSubscriber(1), NewSubscriber(1)
	h.Register <- a
	h.Register <- b

	h.Broadcast <- []byte("reload")

	msg, ok := receive(t, a)
	require.True(t, ok)
	assert.Equal(t, "reload", string(msg))
	msg, ok = receive(t, b)
	require.True(t, ok)
	assert.Equal(t, "reload", string(msg))
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	s := NewSubscriber(1)
	h.Register <- s
	h.Unregister <- s

	_, ok := receive(t, s)
	assert.False(t, ok)
}

func TestHub_DropsSlowSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub()
	go h.Run(ctx)

	slow := NewSubscriber(1)
	h.Register <- slow
	h.Broadcast <- []byte("one")
	h.Broadcast <- []byte("two")

	msg, ok := receive(t, slow)
	require.True(t, ok)
	assert.Equal(t, "one", string(msg))
	_, ok = receive(t, slow)
	assert.False(t, ok, "overflowing subscriber should be closed")
}

func TestHub_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub()
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	s := NewSubscriber(1)
	h.Register <- s
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	_, ok := receive(t, s)
	assert.False(t, ok)
}

func TestHub_DoneClosesAfterRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub()
	go h.Run(ctx)

	select {
	case <-h.Done():
		t.Fatal("Done closed while Run is active")
	default:
	}

	cancel()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after Run returned")
	}
}
