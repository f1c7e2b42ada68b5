package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Snapshots buffered per viewer before it is considered too slow
	sendBuffer = 32
)

// viewer is one WebSocket connection watching the board
type viewer struct {
	conn      *websocket.Conn
	outbox    chan *Message
	done      chan struct{}
	closeOnce sync.Once
	logger    zerolog.Logger
}

func newViewer(conn *websocket.Conn, logger zerolog.Logger) *viewer {
	return &viewer{
		conn:   conn,
		outbox: make(chan *Message, sendBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (v *viewer) start() {
	go v.writePump()
	go v.readPump()
}

// send queues msg without blocking and reports whether it fit
func (v *viewer) send(msg *Message) bool {
	select {
	case <-v.done:
		return true
	default:
	}

	select {
	case v.outbox <- msg:
		return true
	default:
		return false
	}
}

func (v *viewer) close() {
	v.closeOnce.Do(func() {
		close(v.done)
		_ = v.conn.Close()
	})
}

// readPump discards anything the viewer sends; it exists to process control
// frames and notice disconnects
func (v *viewer) readPump() {
	defer v.close()

	v.conn.SetReadLimit(maxMessageSize)
	_ = v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		_ = v.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				v.logger.Error().Err(err).Msg("WebSocket error")
			}
			return
		}
	}
}

func (v *viewer) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		v.close()
	}()

	for {
		select {
		case msg := <-v.outbox:
			_ = v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteJSON(msg); err != nil {
				v.logger.Error().Err(err).Msg("Failed to write message")
				return
			}

		case <-ticker.C:
			_ = v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-v.done:
			return
		}
	}
}
