package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/middleware"
	"github.com/graphpane/graphpane/internal/ws"
)

func wsHandler(appCtx context.Context, log *logrus.Logger, hub *ws.Hub, corsOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS origins are reused as WebSocket origin patterns. The config
		// validator ensures these are safe host patterns (no wildcards etc.).
		conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
			OriginPatterns:       corsOrigins,
			CompressionMode:      websocket.CompressionContextTakeover,
			CompressionThreshold: 128,
		})
		if err != nil {
			log.WithError(err).Error("websocket accept failed")

			return
		}

		client := ws.NewClient(hub, conn)
		hub.Register(client)

		// Derive a context that cancels when either the server shuts down or the request ends.
		wsCtx, wsCancel := context.WithCancel(appCtx)
		go func() {
			select {
			case <-c.Request.Context().Done():
				wsCancel()
			case <-wsCtx.Done():
			}
		}()

		go client.WritePump(wsCtx)
		client.ReadPump(wsCtx)
		wsCancel()
	}
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// maxPaginationLimit caps the maximum number of items per page.
const maxPaginationLimit = 1000

// maxPaginationOffset caps the maximum skip for paginated queries.
const maxPaginationOffset = 100000

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}

	if v > maxPaginationLimit {
		return maxPaginationLimit
	}

	return v
}

func parseOffset(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}

	if v > maxPaginationOffset {
		return maxPaginationOffset
	}

	return v
}

// validatePathID checks that a path parameter ID is non-empty and within length limits.
func validatePathID(id string) error {
	if id == "" {
		return fmt.Errorf("id must not be empty")
	}
	if len(id) > 255 {
		return fmt.Errorf("id exceeds maximum length of 255")
	}
	return nil
}
