package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

// dialTestClient spins up a ws pair: the server-side conn gets
// registered on the hub, the client side reads broadcasts.
func dialTestClient(t *testing.T) (server, client *websocket.Conn, done func()) {
	t.Helper()
	utils.InitLogger()

	serverConn := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConn <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatal(err)
	}
	server = <-serverConn
	return server, client, func() {
		client.Close()
		srv.Close()
	}
}

func clientCount() int {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	return len(orderHub.clients)
}

func TestBroadcastReachesClient(t *testing.T) {
	server, client, done := dialTestClient(t)
	defer done()

	RegisterClient(server, 1)
	defer UnregisterClient(server)

	BroadcastOrderStatus(models.Order{OrderID: "ORD-1", Status: models.StatusConfirmed})

	var msg Message
	assert.NoError(t, client.ReadJSON(&msg))
	assert.Equal(t, EventOrderStatus, msg.Event)
}

// A connection evicted by a failed broadcast write is gone from the
// hub; the reader goroutine's later unregister finds nothing to close.
func TestEvictionHappensOnce(t *testing.T) {
	server, _, done := dialTestClient(t)
	defer done()

	RegisterClient(server, 1)
	assert.Equal(t, 1, clientCount())

	server.Close()
	BroadcastOrderCreated(models.Order{OrderID: "ORD-2"})
	assert.Equal(t, 0, clientCount())

	UnregisterClient(server)
	UnregisterClient(server)
	assert.Equal(t, 0, clientCount())
}
