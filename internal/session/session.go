// Package session keeps server-side login sessions keyed by an opaque id.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New starts a session that expires ttl after now. Expiry is fixed.
func New(username string, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type Store interface {
	Save(ctx context.Context, s Session) error
	// Load returns ErrNotFound for unknown or expired ids.
	Load(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
