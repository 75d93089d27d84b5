package handler

import (
	"context"
	"net/http"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"rackline/internal/domain/entity"
	"rackline/internal/infrastructure/websocket"
	"rackline/internal/usecase"
	"rackline/pkg/logger"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub             *websocket.Hub
	trackingUseCase *usecase.TrackingUseCase
	pollInterval    time.Duration
}

func NewWebSocketHandler(hub *websocket.Hub, trackingUseCase *usecase.TrackingUseCase, pollInterval time.Duration) *WebSocketHandler {
	return &WebSocketHandler{
		hub:             hub,
		trackingUseCase: trackingUseCase,
		pollInterval:    pollInterval,
	}
}

// Subscribe upgrades the connection and subscribes it to status updates
// for one order reference. A background watcher re-polls the upstream
// while the subscription lasts, so status changes reach the client
// without any action on their side; the watcher is stopped when the
// connection goes away.
func (h *WebSocketHandler) Subscribe(c echo.Context) error {
	reference := c.QueryParam("ref")
	email := c.QueryParam("email")
	if reference == "" || email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ref and email query parameters are required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("ws: upgrade failed: %v", err)
		return err
	}

	client := &websocket.Client{
		Reference: reference,
		Conn:      conn,
		Send:      make(chan []byte, 16),
	}

	h.hub.Register <- client

	watcher := h.trackingUseCase.Watch(context.Background(), reference, email, h.pollInterval,
		func(result usecase.TrackResult) {
			if result.Type == "order" {
				h.hub.NotifyOrderStatus(reference, entity.OrderStatus(result.Status))
			}
		})

	go client.WritePump()
	go func() {
		client.ReadPump(h.hub)
		watcher.Stop()
	}()

	return nil
}
