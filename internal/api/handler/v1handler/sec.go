package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"ipconv/internal/config"
	"ipconv/pkg/logger"
	"ipconv/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SecHandlerOptions configure bearer token checks.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key; empty disables the checks.
	PublicKey string
}

// NewSecHandlerOptions maps application configuration to SecHandlerOptions.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.Auth.PublicKey}
}

// CtxKey is the type of context keys set by this package.
type CtxKey string

// ClientIDKey holds the token subject of an authenticated request.
const ClientIDKey CtxKey = "ClientID"

// accessTokenParam carries the token on websocket upgrades, since browsers
// cannot set headers on them.
const accessTokenParam = "access_token"

// SecHandler verifies RS256 bearer tokens.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler parses the configured public key. Without a key the
// returned handler lets every request through.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are checked.
func (s *SecHandler) Enabled() bool {
	return s.key != nil
}

// HandleBearerAuth validates token and stores its subject in the returned context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, ClientIDKey, claims.Subject)
	ctx = logger.WithFields(ctx, zap.String(string(ClientIDKey), claims.Subject))

	return ctx, nil
}

// GetClientIDFromContext returns the subject of the request's token, if any.
func GetClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ClientIDKey).(string)

	return id
}

// bearerToken extracts the token from the Authorization header or, for
// websocket upgrades, from the access_token query parameter.
func bearerToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}
	if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		return r.URL.Query().Get(accessTokenParam)
	}

	return ""
}

// Middleware rejects requests without a valid token when checks are
// enabled. Failures are written by onError.
func (s *SecHandler) Middleware(onError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !s.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				onError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), token)
			if err != nil {
				onError(w, r, err)

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
