// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portaljobs/internal/domain/entity"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no complete session tuple is stored.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionCorrupt is returned when stored session state exists but
	// cannot be parsed back into a session tuple.
	ErrSessionCorrupt = errors.New("session state corrupt")
)

// SessionStore defines the durable key/value persistence for the current
// session tuple. It survives process restarts and is scoped to one browser
// profile; each role's profile blob lives under a role-qualified key so a
// role switch never corrupts the other role's cached data.
//
// The store is written only by the auth usecase. Other components read
// session state through the auth snapshot, never through this interface.
type SessionStore interface {
	// Write persists the full tuple (token, role, user id, profile blob)
	// atomically. A reader must never observe a token without its profile.
	Write(ctx context.Context, session *entity.Session) error

	// Read returns the stored tuple if and only if every field is present
	// and the profile blob parses. On partial or corrupt state it cleans up
	// the remnants and returns ErrSessionCorrupt; on an empty store it
	// returns ErrSessionNotFound.
	Read(ctx context.Context) (*entity.Session, error)

	// Clear removes every session key unconditionally. Clearing an empty
	// store is not an error.
	Clear(ctx context.Context) error
}
