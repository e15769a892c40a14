package service

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a refresh session is absent or expired.
var ErrSessionNotFound = errors.New("refresh session not found")

// RefreshSession is the durable server-side half of a signed-in session.
type RefreshSession struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RefreshSessionStore persists refresh sessions keyed by token hash, so a
// stolen database dump never contains usable refresh tokens.
type RefreshSessionStore interface {
	// Save stores a refresh session until expiresAt.
	Save(ctx context.Context, tokenHash string, session RefreshSession, expiresAt time.Time) error

	// Find retrieves a refresh session by token hash.
	Find(ctx context.Context, tokenHash string) (*RefreshSession, error)

	// Delete revokes one refresh session.
	Delete(ctx context.Context, tokenHash string) error
}
