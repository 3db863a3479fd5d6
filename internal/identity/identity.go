package identity

import (
	"context"
	"errors"
)

// Identity is an authenticated provider user handle.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Event is one identity-change notification. A nil Identity means
// signed out.
type Event struct {
	Identity *Identity
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Provider is the authentication collaborator. Subscribe delivers the
// current identity immediately and every change after; cancel tears the
// subscription down.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, string, error)
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignOut(ctx context.Context, uid string) error
	Verify(token string) (*Identity, error)
	Subscribe() (<-chan Event, func())
}
