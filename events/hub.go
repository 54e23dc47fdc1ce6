package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

// Event types pushed to connected clients.
const (
	EventOrderCreated = "order_created"
	EventOrderStatus  = "order_status"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the websocket clients watching order activity: customers
// waiting on their order, caterers watching incoming ones.
type hub struct {
	clients map[*websocket.Conn]uint // conn -> user id
	mutex   sync.Mutex
}

var orderHub = hub{
	clients: make(map[*websocket.Conn]uint),
}

func RegisterClient(conn *websocket.Conn, userID uint) {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	orderHub.clients[conn] = userID
}

func UnregisterClient(conn *websocket.Conn) {
	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	evict(conn)
}

// evict removes and closes a connection exactly once. Callers hold the
// hub mutex; a connection already evicted by a failed broadcast write
// is a no-op here.
func evict(conn *websocket.Conn) {
	if _, ok := orderHub.clients[conn]; !ok {
		return
	}
	delete(orderHub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated tells listeners a new order landed.
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{
		Event: EventOrderCreated,
		Data:  order,
	})
}

// BroadcastOrderStatus pushes a status change to everyone watching.
func BroadcastOrderStatus(order models.Order) {
	broadcast(Message{
		Event: EventOrderStatus,
		Data: map[string]interface{}{
			"order_id": order.OrderID,
			"status":   order.Status,
		},
	})
}

func broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("events: marshal broadcast: %v", err)
		return
	}

	orderHub.mutex.Lock()
	defer orderHub.mutex.Unlock()
	for conn := range orderHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			evict(conn)
		}
	}
}
