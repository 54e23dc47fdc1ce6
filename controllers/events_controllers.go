package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/SANJEEV-1208/caters-backend/events"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderEventsHandler upgrades the connection and registers the client
// on the order event hub. Auth ran in middleware (token query param
// for websocket clients).
func OrderEventsHandler(c *gin.Context) {
	userID := c.GetUint("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	events.RegisterClient(conn, userID)
	utils.InfoLogger.Printf("Order events client connected: user=%d", userID)

	// Reader loop only detects disconnects; clients never send.
	go func() {
		defer events.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
