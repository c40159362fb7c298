package observe

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Wave  int `json:"wave"`
	Money int `json:"money"`
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var f frame
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func TestHub_BroadcastsToSpectators(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(frame{Wave: 3, Money: 420}))
	assert.Equal(t, frame{Wave: 3, Money: 420}, readFrame(t, a))
	assert.Equal(t, frame{Wave: 3, Money: 420}, readFrame(t, b))
}

func TestHub_LateSpectatorGetsLatestFrame(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	require.NoError(t, hub.Publish(frame{Wave: 1}))
	require.NoError(t, hub.Publish(frame{Wave: 2}))

	conn := dial(t, srv)
	assert.Equal(t, 2, readFrame(t, conn).Wave)
}

func TestHub_DropsClosedSpectators(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)
	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)

	assert.NoError(t, hub.Publish(frame{Wave: 5}))
}

func TestHub_PublishRejectsUnencodable(t *testing.T) {
	hub := NewHub()
	assert.Error(t, hub.Publish(make(chan int)))
}
