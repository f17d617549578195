package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims holds the identity provider fields the service reads.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`

	jwtlib.RegisteredClaims
}

// SubjectID returns user_id when present, otherwise sub.
func (c Claims) SubjectID() string {
	if id := strings.TrimSpace(c.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(c.RegisteredClaims.Subject)
}

type Service interface {
	Decode(tokenString string) (Claims, error)
}

// Decoder reads identity provider tokens. Without a secret it only decodes
// the payload; signatures are checked by the backend.
type Decoder struct {
	secret []byte
	now    func() time.Time
}

func NewDecoder(secret string) *Decoder {
	return &Decoder{secret: []byte(strings.TrimSpace(secret)), now: time.Now}
}

func (d *Decoder) Verifies() bool {
	return d != nil && len(d.secret) > 0
}

func (d *Decoder) Decode(tokenString string) (Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Claims{}, ErrTokenInvalid
	}
	if d.Verifies() {
		return d.verify(tokenString)
	}
	return d.decodeUnverified(tokenString)
}

func (d *Decoder) decodeUnverified(tokenString string) (Claims, error) {
	var c Claims
	if _, _, err := jwtlib.NewParser().ParseUnverified(tokenString, &c); err != nil {
		return Claims{}, ErrTokenInvalid
	}
	if c.SubjectID() == "" {
		return Claims{}, ErrTokenInvalid
	}
	if c.ExpiresAt != nil && d.now().After(c.ExpiresAt.Time) {
		return Claims{}, ErrTokenExpired
	}
	return c, nil
}

func (d *Decoder) verify(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(d.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return d.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid || c.SubjectID() == "" {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

var _ Service = (*Decoder)(nil)
