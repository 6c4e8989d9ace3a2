// Package livereload tells open browser tabs to refresh when the site's
// content changes. It is meant for content editing sessions, not production.
package livereload

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/salon/internal/hub"
)

// ReloadMessage is the text frame sent to clients on every content change.
const ReloadMessage = "reload"

// Handler upgrades browser connections and relays reload notices from the hub.
type Handler struct {
	hub *hub.Hub
}

// NewHandler creates a live reload handler fed by h.
func NewHandler(h *hub.Hub) *Handler {
	return &Handler{hub: h}
}

// Notify broadcasts a reload notice. It gives up when ctx is done.
func Notify(ctx context.Context, h *hub.Hub) {
	select {
	case h.Broadcast <- []byte(ReloadMessage):
	case <-ctx.Done():
		slog.Warn("Live reload notice dropped", "error", ctx.Err())
	}
}

// ServeWS handles the WebSocket connection for one browser tab.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("Failed to upgrade live reload WebSocket", "error", err)
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Clients never send anything; CloseRead's context ends when the tab goes away.
	ctx := conn.CloseRead(c.Request().Context())

	sub := hub.NewSubscriber(1)
	select {
	case h.hub.Register <- sub:
	case <-h.hub.Done():
		slog.Debug("Live reload hub stopped, closing connection")
		return nil
	case <-ctx.Done():
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			h.unregister(sub)
			return nil
		case msg, ok := <-sub.Send:
			if !ok {
				return nil
			}
			if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
				slog.Debug("Live reload write failed", "error", err)
				h.unregister(sub)
				return nil
			}
		}
	}
}

func (h *Handler) unregister(sub *hub.Subscriber) {
	select {
	case h.hub.Unregister <- sub:
	case <-h.hub.Done():
	case <-time.After(time.Second):
	}
}

// Script is the client snippet that connects to path and reloads the page on
// every notice.
func Script(path string) string {
	return `(function(){var p=location.protocol==="https:"?"wss://":"ws://";` +
		`var ws=new WebSocket(p+location.host+"` + path + `");` +
		`ws.onmessage=function(){location.reload();};})();`
}
