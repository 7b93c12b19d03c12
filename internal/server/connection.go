package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Connection wraps one websocket client and its game session
type Connection struct {
	conn      *websocket.Conn
	send      chan *ServerMessage
	session   *Session
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	onClose   func(*Connection)
}

// NewConnection creates a connection wrapper around an upgraded websocket
func NewConnection(conn *websocket.Conn, session *Session, logger *log.Logger, onClose func(*Connection)) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		send:    make(chan *ServerMessage, 64),
		session: session,
		logger:  logger.WithPrefix("conn"),
		ctx:     ctx,
		cancel:  cancel,
		onClose: onClose,
	}
}

// Start begins handling the connection and sends the initial greeting
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()

	c.Send(c.session.Welcome())
	c.Send(c.session.CurrentState())
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
		if c.onClose != nil {
			c.onClose(c)
		}
	})
	return err
}

// Send queues a message for the client. Messages are dropped once the
// connection is shutting down.
func (c *Connection) Send(msg *ServerMessage) {
	defer func() {
		if r := recover(); r != nil {
			// Send channel closed during shutdown
			c.logger.Debug("send on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}

func (c *Connection) readPump() {
	defer func() {
		if err := c.Close(); err != nil {
			c.logger.Debug("close after read pump", "error", err)
		}
	}()

	c.conn.SetReadLimit(1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected close", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.Send(&ServerMessage{Type: TypeError, Error: "malformed message"})
			continue
		}

		for _, reply := range c.session.HandleMessage(msg) {
			c.Send(reply)
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write failed", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}
