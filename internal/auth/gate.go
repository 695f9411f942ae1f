// Package auth is the single-admin login gate: credential check, session issue,
// lookup and teardown.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	jwtutil "github.com/5w1tchy/bookshelf/internal/security/jwt"
	"github.com/5w1tchy/bookshelf/internal/security/password"
	"github.com/5w1tchy/bookshelf/internal/session"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Identity is the authenticated caller attached to a request.
type Identity struct {
	Username  string
	SessionID string
	ExpiresAt time.Time
}

type Config struct {
	// PasswordHash defaults to AdminPasswordHash.
	PasswordHash string
	TTL          time.Duration
	CookieSecure bool
}

type Gate struct {
	hash     string
	ttl      time.Duration
	secure   bool
	sessions session.Store
	signer   *jwtutil.Signer
	now      func() time.Time
}

func NewGate(cfg Config, sessions session.Store, signer *jwtutil.Signer) *Gate {
	if cfg.PasswordHash == "" {
		cfg.PasswordHash = AdminPasswordHash
	}
	if cfg.TTL <= 0 {
		cfg.TTL = time.Hour
	}
	return &Gate{
		hash:     cfg.PasswordHash,
		ttl:      cfg.TTL,
		secure:   cfg.CookieSecure,
		sessions: sessions,
		signer:   signer,
		now:      time.Now,
	}
}

// Authenticate checks the credential pair and stores a new session on success.
// Unknown usernames still pay for the hash comparison.
func (g *Gate) Authenticate(ctx context.Context, username, plain string) (session.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(AdminUsername)) == 1
	passOK, err := password.Verify(plain, g.hash)
	if err != nil {
		return session.Session{}, fmt.Errorf("verify admin password: %w", err)
	}
	if !userOK || !passOK {
		return session.Session{}, ErrInvalidCredentials
	}

	s := session.New(AdminUsername, g.now(), g.ttl)
	if err := g.sessions.Save(ctx, s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

// IssueCookie hands the session to the client.
func (g *Gate) IssueCookie(w http.ResponseWriter, s session.Session) error {
	token, err := g.signer.Sign(s.Username, s.ID, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(s.ExpiresAt.Sub(g.now()).Seconds()),
		Secure:   g.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Identify resolves the request's cookie to a live session.
func (g *Gate) Identify(r *http.Request) (Identity, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Identity{}, false
	}
	claims, err := g.signer.Parse(c.Value)
	if err != nil {
		return Identity{}, false
	}
	s, err := g.sessions.Load(r.Context(), claims.ID)
	if err != nil || s.Expired(g.now()) || s.Username != claims.Subject {
		return Identity{}, false
	}
	return Identity{Username: s.Username, SessionID: s.ID, ExpiresAt: s.ExpiresAt}, true
}

func (g *Gate) IsAuthenticated(r *http.Request) bool {
	_, ok := g.Identify(r)
	return ok
}

// EndSession drops the server-side session and clears the cookie.
func (g *Gate) EndSession(w http.ResponseWriter, r *http.Request) error {
	var err error
	if c, cerr := r.Cookie(CookieName); cerr == nil && c.Value != "" {
		if claims, perr := g.signer.Parse(c.Value); perr == nil {
			err = g.sessions.Delete(r.Context(), claims.ID)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   g.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return err
}
