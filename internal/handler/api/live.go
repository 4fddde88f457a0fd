package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	resdto "parking-monitor/internal/handler/dto/response"
	"parking-monitor/internal/pkg/config"
	"parking-monitor/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type LiveHandler struct {
	q        queries.ParkingQueries
	interval time.Duration
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewLiveHandler(q queries.ParkingQueries, cfg config.Config, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{
		q:        q,
		interval: cfg.Live.PushInterval,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the dashboard is public, same as the CORS policy
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// @Summary Live statuses
// @Description Websocket that pushes the current statuses on connect and then periodically
// @Tags parking
// @Router /ws [get]
func (h *LiveHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered with an HTTP error
		h.logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go h.readPump(conn, cancel)

	push := time.NewTicker(h.interval)
	defer push.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if !h.pushStatuses(ctx, conn) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case <-push.C:
			if !h.pushStatuses(ctx, conn) {
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *LiveHandler) pushStatuses(ctx context.Context, conn *websocket.Conn) bool {
	views, err := h.q.CurrentStatuses(ctx)
	if err != nil {
		// keep the socket, the next push may succeed
		h.logger.Error("failed to load statuses for live feed", "error", err.Error())
		return true
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(resdto.StatusListResponse{Statuses: resdto.FromParkingStatusViews(views)}); err != nil {
		h.logger.Debug("live feed client gone", "error", err.Error())
		return false
	}
	return true
}

// readPump drains client frames so pongs and close frames are processed.
func (h *LiveHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
