// Package feed publishes world snapshots to websocket viewers and accepts
// player intents from them.
package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/stickfight/internal/game/input"
	"github.com/Faultbox/stickfight/internal/game/states"
	"github.com/Faultbox/stickfight/internal/game/world"
)

const (
	writeWait = time.Second
	// sendBuffer is how many snapshots a viewer may fall behind before it
	// is dropped.
	sendBuffer = 16
)

type subscriber struct {
	conn *websocket.Conn
	send chan []byte // closed by the hub when the viewer is removed
}

// writePump delivers queued snapshots in order. It closes the connection
// when the queue is closed or a write fails.
func (s *subscriber) writePump() {
	defer s.conn.Close()
	for data := range s.send {
		s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

// Hub fans snapshots out to every connected viewer. It implements
// states.Observer.
type Hub struct {
	every    int
	intents  *input.Latest // nil ignores client intents
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[*subscriber]struct{}
	last []byte
}

// NewHub creates a hub that broadcasts every n-th playing tick. Intents read
// from clients are stored in intents when it is not nil.
func NewHub(every int, intents *input.Latest, log *zap.Logger) *Hub {
	if every < 1 {
		every = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		every:   every,
		intents: intents,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		subs: make(map[*subscriber]struct{}),
	}
}

// Observe queues a snapshot for every viewer without blocking on the
// network. Playing ticks are thinned to one in every n; the other phases are
// always sent.
func (h *Hub) Observe(phase states.Phase, w *world.World) {
	if phase == states.Playing && w.CurrentTick()%h.every != 0 {
		return
	}

	data, err := json.Marshal(BuildSnapshot(phase, w))
	if err != nil {
		h.log.Error("failed to marshal snapshot", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for sub := range h.subs {
		select {
		case sub.send <- data:
		default:
			h.log.Warn("dropping viewer that fell behind")
			h.removeLocked(sub)
		}
	}
}

// Last returns the most recent snapshot, nil before the first one.
func (h *Hub) Last() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		h.removeLocked(sub)
	}
}

// subscribe registers a viewer and queues the latest snapshot first, under
// the same lock Observe holds, so the viewer never sees ticks out of order.
func (h *Hub) subscribe(conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil {
		sub.send <- h.last
	}
	h.subs[sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *subscriber) {
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.send)
}

// ServeHTTP upgrades the request to a websocket, sends the latest snapshot
// and then reads intents until the viewer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}

	sub := h.subscribe(conn)
	go sub.writePump()
	h.log.Info("viewer connected", zap.String("remote", r.RemoteAddr))
	defer func() {
		h.unsubscribe(sub)
		h.log.Info("viewer disconnected", zap.String("remote", r.RemoteAddr))
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.log.Debug("discarding malformed message", zap.Error(err))
			continue
		}
		if msg.Type != "input" || h.intents == nil {
			continue
		}
		h.intents.Set(msg.Intent)
	}
}

// clientMessage is what viewers send: {"type":"input","forward":1,...}.
type clientMessage struct {
	Type string `json:"type"`
	input.Intent
}
