package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kiratakip/internal/chat"
)

// ChatHandlers handles the chat status endpoint
type ChatHandlers struct {
	hub *chat.Hub
}

// NewChatHandlers creates a new chat handlers instance
func NewChatHandlers(hub *chat.Hub) *ChatHandlers {
	return &ChatHandlers{hub: hub}
}

// Status handles reporting the live connection count
func (h *ChatHandlers) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"activeConnections": h.hub.ActiveConnections(),
		"status":            "online",
	})
}
