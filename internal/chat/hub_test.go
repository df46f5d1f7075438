package chat

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, delay time.Duration) (*Hub, *websocket.Conn, func()) {
	t.Helper()
	hub := NewHub(delay, zap.NewNop())

	e := echo.New()
	e.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(e)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	return hub, conn, func() {
		_ = conn.Close()
		srv.Close()
	}
}

func TestUserMessageEchoAndScriptedReply(t *testing.T) {
	_, conn, cleanup := dialHub(t, 10*time.Millisecond)
	defer cleanup()

	sent := Message{
		Type:      TypeUserMessage,
		Message:   "Merhaba",
		Timestamp: time.Now().Format(time.RFC3339),
	}
	require.NoError(t, conn.WriteJSON(sent))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var echoed Message
	require.NoError(t, conn.ReadJSON(&echoed))
	assert.Equal(t, sent, echoed)

	var reply Message
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, TypeAssistant, reply.Type)
	assert.Equal(t, Respond("Merhaba"), reply.Message)
	assert.NotEmpty(t, reply.Timestamp)
}

func TestSupportRequestAck(t *testing.T) {
	_, conn, cleanup := dialHub(t, 10*time.Millisecond)
	defer cleanup()

	require.NoError(t, conn.WriteJSON(Message{Type: TypeSupportRequest}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ack Message
	require.NoError(t, conn.ReadJSON(&ack))
	assert.Equal(t, TypeSupportAck, ack.Type)
	assert.Equal(t, supportAck, ack.Message)
}

func TestActiveConnections(t *testing.T) {
	hub, conn, cleanup := dialHub(t, time.Millisecond)
	defer cleanup()

	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 1
	}, time.Second, 10*time.Millisecond)

	_ = conn.Close()
	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 0
	}, time.Second, 10*time.Millisecond)
}
