// Package v1handler implements the version 1 HTTP API: one-shot conversion,
// validation, the synchronization contract and live websocket sessions.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"ipconv/internal/config"
	"ipconv/internal/converter"
	"ipconv/pkg/controller"
	"ipconv/pkg/ipbin"
	"ipconv/pkg/logger"
	"ipconv/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Converter converter.Converter
}

// LiveOptions configure websocket sessions.
type LiveOptions struct {
	// AllowedOrigins lists browser origins that may open a session; "*" allows all.
	AllowedOrigins []string
	// ReadLimit is the maximum size in bytes of a client message.
	ReadLimit int64
	// PingInterval is how often the server pings the client.
	PingInterval time.Duration
	// PongTimeout closes sessions that sent nothing for this long.
	PongTimeout time.Duration
	// WriteTimeout bounds each write to the client.
	WriteTimeout time.Duration
}

// Options configure the handlers.
type Options struct {
	// MaxBodyBytes limits JSON request bodies.
	MaxBodyBytes int64
	// Live configures websocket sessions.
	Live LiveOptions
}

// NewOptions maps application configuration to handler options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxBodyBytes: cfg.HTTP.MaxBodyBytes,
		Live: LiveOptions{
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
			ReadLimit:      cfg.Live.ReadLimit,
			PingInterval:   cfg.Live.PingInterval,
			PongTimeout:    cfg.Live.PongTimeout,
			WriteTimeout:   cfg.Live.WriteTimeout,
		},
	}
}

type Handler struct {
	deps     Deps
	options  Options
	upgrader websocket.Upgrader

	closing   chan struct{}
	closeOnce sync.Once
}

func New(deps Deps, options Options) *Handler {
	h := &Handler{
		deps:    deps,
		options: options,
		closing: make(chan struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return controller.OriginAllowed(options.Live.AllowedOrigins, r.Header.Get("Origin"))
		},
	}

	return h
}

// Close ends every live session. It is safe to call more than once.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.closing) })
}

// Routes returns the non-streaming v1 endpoints.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/convert/address", h.handle(h.ConvertAddress))
	mux.HandleFunc("POST /v1/convert/binary", h.handle(h.ConvertBinary))
	mux.HandleFunc("POST /v1/validate", h.handle(h.Validate))
	mux.HandleFunc("POST /v1/session/edit", h.handle(h.Edit))

	return mux
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps err to an HTTP status and a client-facing body. Advisory
// conversion errors keep their message; internal errors are logged and
// replaced with a generic message.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	k := serrors.KindOf(err)

	var (
		status   int
		fallback string
	)
	switch {
	case k == nil:
		k = serrors.ErrInternal
		status, fallback = http.StatusInternalServerError, "internal error"
	case errors.Is(k, ipbin.ErrInvalidAddressFormat):
		status, fallback = http.StatusBadRequest, ipbin.AddressErrorMessage
	case errors.Is(k, ipbin.ErrInvalidBinaryLength), errors.Is(k, ipbin.ErrInvalidBinaryChars):
		status, fallback = http.StatusBadRequest, ipbin.BinaryErrorMessage
	case errors.Is(k, serrors.ErrBadRequest):
		status, fallback = http.StatusBadRequest, "bad request"
	case errors.Is(k, serrors.ErrUnauthorized):
		status, fallback = http.StatusUnauthorized, "unauthorized"
	case errors.Is(k, serrors.ErrTimeout):
		status, fallback = http.StatusGatewayTimeout, "request timed out"
	default:
		k = serrors.ErrInternal
		status, fallback = http.StatusInternalServerError, "internal error"
	}

	message := fallback
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		message = serrors.MessageOf(err, fallback)
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    k.Error(),
			Message: message,
		},
	}
}

// handle adapts an error-returning handler to http.HandlerFunc.
func (h *Handler) handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.WriteError(w, r, err)
		}
	}
}

// WriteError replies with the mapped error body.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		encodeError(e, res.Response)
	})
}
