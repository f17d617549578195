package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"style-sync/internal/domain/profile"
	"style-sync/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

const CtxIdentityKey = "identity"

const (
	defaultConfirmTTL  = time.Minute
	defaultConfirmSize = 4096
)

// TokenConfirmer checks a token the local decoder could not verify. It
// returns jwt.ErrTokenInvalid when the token is not genuine or belongs to
// someone other than userID.
type TokenConfirmer interface {
	ConfirmToken(ctx context.Context, token, userID string) error
}

type verifier interface {
	Verifies() bool
}

type AuthMiddleware struct {
	jwt       jwt.Service
	logger    *zap.Logger
	confirmer TokenConfirmer
	confirmed *expirable.LRU[string, string]
}

func NewAuthMiddleware(jwtSvc jwt.Service, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{jwt: jwtSvc, logger: logger}
}

// WithConfirmer makes tokens whose signature is not checked locally go
// through c before their identity is trusted. Positive answers are kept
// for ttl.
func (m *AuthMiddleware) WithConfirmer(c TokenConfirmer, ttl time.Duration) *AuthMiddleware {
	if ttl <= 0 {
		ttl = defaultConfirmTTL
	}
	m.confirmer = c
	m.confirmed = expirable.NewLRU[string, string](defaultConfirmSize, nil, ttl)
	return m
}

// Required rejects requests without a genuine bearer token.
func (m *AuthMiddleware) Required() fiber.Handler {
	return m.required(false)
}

// RequiredSocket is Required that also reads ?token=, since browsers cannot
// set headers on websocket upgrades.
func (m *AuthMiddleware) RequiredSocket() fiber.Handler {
	return m.required(true)
}

func (m *AuthMiddleware) required(allowQuery bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := tokenFromRequest(c, allowQuery)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		id, err := m.decode(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if err := m.confirm(c.Context(), id); err != nil {
			if errors.Is(err, jwt.ErrTokenInvalid) {
				return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
			}
			return NewAppError(fiber.StatusServiceUnavailable, "Unable to verify token", nil, err)
		}

		c.Locals(CtxIdentityKey, id)
		return c.Next()
	}
}

// Optional never rejects. Callers without a usable token continue as an
// anonymous placeholder identity.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := profile.Identity{
			Name:      profile.PlaceholderName,
			Email:     profile.PlaceholderEmail,
			Anonymous: true,
		}
		if token, ok := tokenFromRequest(c, false); ok {
			decoded, err := m.decode(token)
			if err == nil {
				err = m.confirm(c.Context(), decoded)
			}
			if err == nil {
				id = decoded
			} else {
				// The backend has the final say on tokens we cannot trust.
				id.Token = token
				m.logger.Debug("optional auth: token not trusted", zap.Error(err))
			}
		}

		c.Locals(CtxIdentityKey, id)
		return c.Next()
	}
}

func (m *AuthMiddleware) decode(token string) (profile.Identity, error) {
	if m == nil || m.jwt == nil {
		return profile.Identity{}, jwt.ErrTokenInvalid
	}
	claims, err := m.jwt.Decode(token)
	if err != nil {
		return profile.Identity{}, err
	}
	return profile.Identity{
		UserID: claims.SubjectID(),
		Email:  claims.Email,
		Name:   claims.Name,
		Token:  token,
	}, nil
}

func (m *AuthMiddleware) confirm(ctx context.Context, id profile.Identity) error {
	if m.confirmer == nil {
		return nil
	}
	if v, ok := m.jwt.(verifier); ok && v.Verifies() {
		return nil
	}

	key := tokenKey(id.Token)
	if userID, ok := m.confirmed.Get(key); ok && userID == id.UserID {
		return nil
	}
	if err := m.confirmer.ConfirmToken(ctx, id.Token, id.UserID); err != nil {
		m.logger.Debug("token confirmation failed", zap.String("user_id", id.UserID), zap.Error(err))
		return err
	}
	m.confirmed.Add(key, id.UserID)
	return nil
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// IdentityFrom returns the identity stored by either auth handler.
func IdentityFrom(c fiber.Ctx) (profile.Identity, bool) {
	id, ok := c.Locals(CtxIdentityKey).(profile.Identity)
	return id, ok
}

func tokenFromRequest(c fiber.Ctx, allowQuery bool) (string, bool) {
	if token, ok := bearerTokenFromHeader(c.Get("Authorization")); ok {
		return token, true
	}
	if !allowQuery {
		return "", false
	}
	if token := strings.TrimSpace(c.Query("token")); token != "" {
		return token, true
	}
	return "", false
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
