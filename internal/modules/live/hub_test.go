package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/domain"
)

// dialHub spins up a test server that registers each incoming connection
// with the hub, and returns a client connection to it.
func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn, 1)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	client := dialHub(t, hub)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	broadcaster := NewBroadcaster(hub)
	broadcaster.ReservationCreated(&domain.Reservation{
		ID:      7,
		SalonID: 2,
		Date:    "2027-03-01",
		Time:    "10:00",
		Status:  domain.ReservationPending,
	})

	_ = client.SetReadDeadline(time.Now().Add(time.Second))
	var got Event
	require.NoError(t, client.ReadJSON(&got))

	assert.Equal(t, EventReservationCreated, got.Type)
	assert.Equal(t, int64(7), got.ReservationID)
	assert.Equal(t, int64(2), got.SalonID)
	assert.Equal(t, "2027-03-01", got.Date)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, "pending", got.Status)
}

func TestHub_UnregisterRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	_ = dialHub(t, hub)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var serverConn *websocket.Conn
	for conn := range hub.conns {
		serverConn = conn
	}
	hub.mu.RUnlock()

	hub.Unregister(serverConn)

	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHub_BroadcastDropsClosedConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.mu.RLock()
	count := len(hub.conns)
	hub.mu.RUnlock()
	require.Equal(t, 0, count)

	client := dialHub(t, hub)
	require.Eventually(t, func() bool {
		return hub.SubscriberCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var serverConn *websocket.Conn
	for conn := range hub.conns {
		serverConn = conn
	}
	hub.mu.RUnlock()

	_ = client.Close()
	_ = serverConn.Close()

	hub.Broadcast(Event{Type: EventReservationDeleted})

	assert.Equal(t, 0, hub.SubscriberCount())
}
