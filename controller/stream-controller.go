package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"p2p/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// StreamController fans event updates out to connected frontends. The updates
// arrive over the shared bus, so every replica sees changes made through any
// other replica.
type StreamController struct {
	syncService *service.SyncService
	mu          sync.Mutex
	connections map[*websocket.Conn]bool
}

func NewStreamController(syncService *service.SyncService) *StreamController {
	controller := &StreamController{
		syncService: syncService,
		connections: make(map[*websocket.Conn]bool),
	}
	controller.StartUpdateFanout()
	return controller
}

func setupStreamController(syncService *service.SyncService) []RouteInfo {
	e := NewStreamController(syncService)
	routes := []RouteInfo{
		{Method: "GET", Path: "/stream/ws", HandlerFunc: e.WebSocketHandler},
	}
	return routes
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id StreamWebSocket
// @Description Websocket for live updates. Connected clients receive a message whenever the roster, schedule or ratings change.
// @Tags stream
// @Success 200 {object} service.UpdateMessage
// @Router /stream/ws [get]
func (e *StreamController) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	e.mu.Lock()
	e.connections[conn] = true
	e.mu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			delete(e.connections, conn)
			e.mu.Unlock()
			return
		}
	}
}

func (e *StreamController) StartUpdateFanout() {
	updates, err := e.syncService.Updates(context.Background())
	if err != nil {
		log.Printf("update stream unavailable, websocket clients will not receive updates: %v", err)
		return
	}
	go func() {
		for update := range updates {
			serialized, err := json.Marshal(update)
			if err != nil {
				continue
			}
			e.mu.Lock()
			for conn := range e.connections {
				if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
					conn.Close()
					delete(e.connections, conn)
				}
			}
			e.mu.Unlock()
		}
	}()
}
