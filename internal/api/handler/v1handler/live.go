package v1handler

import (
	"context"
	"net/http"
	"time"

	"ipconv/pkg/controller"
	"ipconv/pkg/domain"
	"ipconv/pkg/logger"
	"ipconv/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Live message types sent by the server.
const (
	LiveMessageState = "state"
	LiveMessageError = "error"
)

// Live upgrades the request to a websocket and runs a two-field session on
// it. The server sends the empty state first, then answers every
// {"field","value"} text message with the full state. A message that cannot
// be applied is answered with an error message and leaves the state as is.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var header http.Header
	if id := controller.RequestID(ctx); id != "" {
		header = http.Header{controller.RequestIDHeader: {id}}
	}

	conn, err := h.upgrader.Upgrade(w, r, header)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		logger.Warn(ctx, "could not upgrade live session", zap.Error(err))

		return
	}
	defer conn.Close()

	logger.Debug(ctx, "live session started")
	h.runLive(ctx, conn)
	logger.Debug(ctx, "live session ended")
}

func (h *Handler) runLive(ctx context.Context, conn *websocket.Conn) {
	opts := h.options.Live

	if opts.ReadLimit > 0 {
		conn.SetReadLimit(opts.ReadLimit)
	}
	extendRead := func() {
		if opts.PongTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(opts.PongTimeout))
		}
	}
	extendRead()
	conn.SetPongHandler(func(string) error {
		extendRead()

		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(ctx, conn, done)

	var state domain.State
	if err := h.writeLive(conn, liveState(state)); err != nil {
		logger.Warn(ctx, "could not send initial live state", zap.Error(err))

		return
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn(ctx, "live session closed unexpectedly", zap.Error(err))
			}

			return
		}
		extendRead()

		var reply []byte
		if msgType != websocket.TextMessage {
			reply = h.liveError(ctx, serrors.With(serrors.ErrBadRequest, "expected a text message"))
		} else if next, err := h.applyLive(ctx, state, data); err != nil {
			reply = h.liveError(ctx, err)
		} else {
			state = next
			reply = liveState(state)
		}

		if err := h.writeLive(conn, reply); err != nil {
			logger.Warn(ctx, "could not write live state", zap.Error(err))

			return
		}
	}
}

func (h *Handler) applyLive(ctx context.Context, state domain.State, data []byte) (domain.State, error) {
	edit, err := decodeEdit(data)
	if err != nil {
		return state, err
	}

	return h.deps.Converter.Apply(ctx, state, edit) //nolint: wrapcheck
}

// keepAlive pings the client and closes the connection when the handler
// shuts down. It only writes control frames, which gorilla/websocket allows
// concurrently with the session's data writes.
func (h *Handler) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	opts := h.options.Live

	var tick <-chan time.Time
	if opts.PingInterval > 0 {
		ticker := time.NewTicker(opts.PingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-done:
			return
		case <-h.closing:
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, h.writeDeadline())
			_ = conn.Close()

			return
		case <-tick:
			if err := conn.WriteControl(websocket.PingMessage, nil, h.writeDeadline()); err != nil {
				logger.Debug(ctx, "live ping failed", zap.Error(err))
				_ = conn.Close()

				return
			}
		}
	}
}

func (h *Handler) writeDeadline() time.Time {
	if h.options.Live.WriteTimeout <= 0 {
		return time.Time{}
	}

	return time.Now().Add(h.options.Live.WriteTimeout)
}

func (h *Handler) writeLive(conn *websocket.Conn, msg []byte) error {
	if err := conn.SetWriteDeadline(h.writeDeadline()); err != nil {
		return err //nolint: wrapcheck
	}

	return conn.WriteMessage(websocket.TextMessage, msg) //nolint: wrapcheck
}

func (h *Handler) liveError(ctx context.Context, err error) []byte {
	res := h.NewError(ctx, err).Response

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("type")
	e.Str(LiveMessageError)
	e.FieldStart("code")
	e.Str(res.Code)
	e.FieldStart("message")
	e.Str(res.Message)
	e.ObjEnd()

	return e.Bytes()
}

func liveState(state domain.State) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("type")
	e.Str(LiveMessageState)
	e.FieldStart("state")
	encodeState(&e, state)
	e.ObjEnd()

	return e.Bytes()
}
