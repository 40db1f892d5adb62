package server

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/evtap/evtap/gesture"
	"github.com/evtap/evtap/utils"
)

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (wsc *wsConnection) sendJSON(v interface{}) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	return wsc.conn.WriteJSON(v)
}

// hub fans fired-gesture events out to websocket subscribers.
type hub struct {
	mu      sync.Mutex
	clients map[*wsConnection]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*wsConnection]struct{})}
}

func (h *hub) add(c *wsConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) remove(c *wsConnection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// broadcast sends an event to every subscriber, dropping clients whose
// connection errors.
func (h *hub) broadcast(event gesture.FireEvent) {
	h.mu.Lock()
	clients := make([]*wsConnection, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.sendJSON(event); err != nil {
			utils.Verbose("dropping websocket client: %v", err)
			h.remove(c)
			c.conn.Close()
		}
	}
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

// handleWebSocket subscribes a client to the fire-event stream. Subscribers
// only receive; reads exist to notice the disconnect.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := newUpgrader(s.cfg.EnableCORS).Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("WebSocket upgrade failed: %v", err)
		return
	}

	client := &wsConnection{conn: conn}
	s.hub.add(client)
	defer func() {
		s.hub.remove(client)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			utils.Verbose("WebSocket connection closed: %v", err)
			return
		}
	}
}
