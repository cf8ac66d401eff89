package ws

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/sirupsen/logrus"
)

const (
	writeTimeout     = 10 * time.Second
	wsReadLimit      = 4096
	clientSendBuffer = 256
	maxConnLifetime  = 4 * time.Hour // safety-net lifetime
	pingInterval     = 30 * time.Second
	pingTimeout      = 10 * time.Second
	maxMissedPongs   = int32(2)
)

// Client wraps a single WebSocket connection managed by the Hub.
type Client struct {
	hub         *Hub
	conn        *websocket.Conn
	send        chan []byte
	log         *logrus.Logger
	closeOnce   sync.Once
	connectedAt time.Time
}

// closeSend safely closes the send channel exactly once.
func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

// NewClient creates a new Client for the given WebSocket connection.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, clientSendBuffer),
		log:         hub.log,
		connectedAt: time.Now(),
	}
}

// ReadPump reads messages from the WebSocket connection until it closes.
// The event stream is one-way; incoming messages are drained and ignored.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.CloseNow() //nolint:errcheck // best-effort close on teardown
	}()

	c.conn.SetReadLimit(wsReadLimit)

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			if websocket.CloseStatus(err) != -1 {
				c.log.WithField("status", websocket.CloseStatus(err)).Debug("client disconnected")
			}

			return
		}
	}
}

// sendPing sends a WebSocket ping and tracks missed pongs.
// Returns true if the connection should be closed.
func (c *Client) sendPing(ctx context.Context, missedPongs *atomic.Int32) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := c.conn.Ping(pingCtx)
	cancel()

	if err != nil {
		if missedPongs.Add(1) >= maxMissedPongs {
			c.log.Debug("closing: 2 consecutive missed pongs")

			return true
		}

		return false
	}

	missedPongs.Store(0)

	return false
}

// WritePump writes messages from the send channel to the WebSocket
// connection. It enforces a maximum connection lifetime.
func (c *Client) WritePump(ctx context.Context) {
	defer c.conn.CloseNow() //nolint:errcheck // best-effort close on teardown

	lifetimeTimer := time.NewTimer(time.Until(c.connectedAt.Add(maxConnLifetime)))
	defer lifetimeTimer.Stop()

	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	var missedPongs atomic.Int32

	for {
		select {
		case <-pingTicker.C:
			if c.sendPing(ctx, &missedPongs) {
				return
			}
		case msg, ok := <-c.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)

			err := c.conn.Write(writeCtx, websocket.MessageText, msg)

			cancel()

			if err != nil {
				c.log.WithError(err).Debug("write failed")

				return
			}
		case <-lifetimeTimer.C:
			c.log.Info("closing WebSocket: max connection lifetime exceeded")
			c.conn.Close(websocket.StatusNormalClosure, "max connection lifetime exceeded") //nolint:errcheck // best-effort

			return
		}
	}
}
