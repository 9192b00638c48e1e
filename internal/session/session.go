// Package session issues and verifies the signed session tokens carried in
// the auth cookie (pages) or the Authorization header (JSON API).
package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

// DefaultTTL is the validity window of an issued session.
const DefaultTTL = 12 * time.Hour

var (
	ErrNoToken      = errors.New("session token missing")
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevoked      = errors.New("session revoked")
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID    int64  `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
	FullName  string `json:"name"`
	jwt.RegisteredClaims
}

// Revoker remembers logged-out token ids until they expire on their own.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Manager signs, parses and transports session tokens.
type Manager struct {
	secretKey    []byte
	ttl          time.Duration
	cookieName   string
	secureCookie bool
	revoker      Revoker
	now          func() time.Time
}

// Opt configures a Manager.
type Opt func(*Manager)

func WithSecretKey(key string) Opt { return func(m *Manager) { m.secretKey = []byte(key) } }

func WithExpiration(ttl time.Duration) Opt { return func(m *Manager) { m.ttl = ttl } }

func WithCookie(name string, secure bool) Opt {
	return func(m *Manager) {
		m.cookieName = name
		m.secureCookie = secure
	}
}

func WithRevoker(r Revoker) Opt { return func(m *Manager) { m.revoker = r } }

func WithClock(now func() time.Time) Opt { return func(m *Manager) { m.now = now } }

// New creates a Manager. Without options tokens live DefaultTTL and travel
// in the "gw_session" cookie.
func New(opts ...Opt) *Manager {
	m := &Manager{
		ttl:        DefaultTTL,
		cookieName: "gw_session",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string { return m.cookieName }

// Issue signs a new token for the user, valid for the configured TTL from now.
func (m *Manager) Issue(ctx context.Context, u *models.User) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// Parse verifies signature, expiry and revocation and returns the claims.
func (m *Manager) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return m.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	if m.revoker != nil && claims.ID != "" {
		revoked, err := m.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrRevoked
		}
	}
	return claims, nil
}

// Validate reports whether tokenString is a live session token.
func (m *Manager) Validate(ctx context.Context, tokenString string) error {
	_, err := m.Parse(ctx, tokenString)
	return err
}

// Revoke makes the token unusable for the rest of its lifetime.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	if m.revoker == nil || claims == nil || claims.ID == "" {
		return nil
	}
	until := m.now().Add(m.ttl)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	return m.revoker.Revoke(ctx, claims.ID, until)
}

// GetTokenFromRequest returns the token from the session cookie or, failing
// that, from a "Bearer" Authorization header.
func (m *Manager) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}
	return parts[1], nil
}

// SetCookie writes the session cookie. A persistent cookie outlives the
// browser session and expires with the token; otherwise it has no Expires.
func (m *Manager) SetCookie(w http.ResponseWriter, token string, claims *Claims, persistent bool) {
	c := &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if persistent && claims != nil && claims.ExpiresAt != nil {
		c.Expires = claims.ExpiresAt.Time
		c.MaxAge = int(claims.ExpiresAt.Sub(m.now()).Seconds())
	}
	http.SetCookie(w, c)
}

// ClearCookie deletes the session cookie on the client.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

type contextKey struct{}

var claimsKey = contextKey{}

// WithClaims stores the authenticated identity in ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// FromContext returns the identity stored by WithClaims.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok && c != nil
}
