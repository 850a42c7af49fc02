package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/Nithinhelloweb/CGPA-REACT-V1/internal/websocket"
)

const keepAliveInterval = 30 * time.Second

// FeedSubscriber opens the live submission channel.
type FeedSubscriber interface {
	Subscribe(ctx context.Context) *redis.PubSub
}

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// FeedHandler pushes every new submission to connected admins.
type FeedHandler struct {
	feed     FeedSubscriber
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewFeedHandler(feed FeedSubscriber, allowedOrigins []string, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		feed:     feed,
		upgrader: buildUpgrader(allowedOrigins),
		log:      log.With().Str("component", "feed_handler").Logger(),
	}
}

// Stream godoc
// WS /ws/v1/admin/submissions/stream?token=
func (h *FeedHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := h.feed.Subscribe(ctx)
	defer pubsub.Close()

	// Only the reader goroutine reads; only this goroutine writes.
	pongs := make(chan struct{}, 1)
	go func() {
		defer cancel()
		for {
			var env ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &env); err != nil {
				return
			}
			if env.Action == ws.ActionPing {
				select {
				case pongs <- struct{}{}:
				default:
				}
			}
		}
	}()

	h.log.Info().Str("ip", c.ClientIP()).Msg("Admin attached to submission feed")

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	ch := pubsub.Channel()

	for {
		var err error
		select {
		case <-ctx.Done():
			h.log.Info().Str("ip", c.ClientIP()).Msg("Admin detached from submission feed")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			err = ws.WriteTyped(conn, ws.SubmissionEvent{
				Event:      ws.EventSubmission,
				Submission: json.RawMessage(msg.Payload),
			})
		case <-pongs:
			err = ws.WriteTyped(conn, ws.PingResponse{Event: ws.EventPong})
		case <-keepAlive.C:
			err = ws.WriteTyped(conn, ws.PingResponse{Event: ws.EventPing})
		}
		if err != nil {
			h.log.Debug().Err(err).Msg("Feed write failed")
			return
		}
	}
}
