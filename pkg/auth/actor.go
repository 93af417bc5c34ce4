package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Role is the actor role stored on a profile. Roles are assigned at
// registration and immutable through user-facing operations.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleNGO       Role = "ngo"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDonor, RoleNGO, RoleVolunteer, RoleAdmin:
		return Role(s), nil
	}
	return "", errors.New("unknown role: " + s)
}

// Actor is the authenticated identity every lifecycle operation runs as.
// It is always passed explicitly — never cached in package state.
type Actor struct {
	ID       uuid.UUID
	Role     Role
	FullName string
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// ErrActorNotFound is returned when no Actor exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrActorNotFound = errors.New("actor not found in context")

// ActorFromCtx extracts the authenticated actor from the request context.
// Returns ErrActorNotFound for unauthenticated requests.
func ActorFromCtx(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.ID == uuid.Nil {
		return Actor{}, ErrActorNotFound
	}
	return actor, nil
}

// WithActor returns a new context with the given actor attached.
// Used by the session middleware after validating the cookie.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
