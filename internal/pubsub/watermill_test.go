package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Text string `json:"text"`
}

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"request_id": "req-123"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "hello", string(msg.Payload))
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestTypedEvent(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[greeting]("test.greeting")
	assert.Equal(t, "test.greeting", event.Name())

	received := make(chan greeting, 1)
	require.NoError(t, Subscribe(ctx, bridge, event, func(ctx context.Context, g greeting) error {
		received <- g
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, event, greeting{Text: "hi"}))

	select {
	case g := <-received:
		assert.Equal(t, "hi", g.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

func TestTypedEvent_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[greeting]("test.flaky")
	received := make(chan string, 2)
	require.NoError(t, Subscribe(ctx, bridge, event, func(ctx context.Context, g greeting) error {
		received <- g.Text
		if g.Text == "first" {
			return errors.New("boom")
		}
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, event, greeting{Text: "first"}))
	require.NoError(t, Publish(ctx, bridge, event, greeting{Text: "second"}))

	var got []string
	for i := 0; i < 2; i++ {
		select {
		case text := <-received:
			got = append(got, text)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message %d", i+1)
		}
	}
	assert.ElementsMatch(t, []string{"first", "second"}, got)
}
