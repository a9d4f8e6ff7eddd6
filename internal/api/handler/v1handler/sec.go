package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"leadhunter/internal/config"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type userIDContextKey struct{}

// SecHandlerOptions hold the key material for validating bearer tokens.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA key matching the signing key used by
	// the jwt subcommand.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests with RS256 bearer tokens. The token
// subject is the user ID and is placed on the request context for handlers.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Require wraps a handler with bearer-token authentication.
func (s *SecHandler) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.authenticate(r)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), userIDContextKey{}, userID)))
	})
}

func (s *SecHandler) authenticate(r *http.Request) (domain.UserID, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.publicKey, nil
	})
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return domain.UserID(userID), nil
}

// GetUserIDFromContext returns the authenticated user ID stored by Require.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(userIDContextKey{}).(domain.UserID)

	return userID
}
