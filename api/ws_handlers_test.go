package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServeWS_WelcomeThenBroadcast(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// The first frame is always the welcome, delivered before the
	// connection joins the broadcast set.
	var welcome WSMessage
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, "connected", welcome.Type)

	require.Eventually(t, func() bool { return hub.Observers() == 1 },
		2*time.Second, 10*time.Millisecond)

	hub.Broadcast("comment.published", map[string]string{"comment_id": "c_0123456789ab"})

	var event WSMessage
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "comment.published", event.Type)
}

func TestHub_DropsClosedObservers(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	var welcome WSMessage
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&welcome))
	require.Eventually(t, func() bool { return hub.Observers() == 1 },
		2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		hub.Broadcast("citation.recorded", nil)
		return hub.Observers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
