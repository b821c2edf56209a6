package usecase

import (
	"context"

	"localguide/internal/domain/entity"
)

// AccountUsecase resolves sessions and manages role assignment.
type AccountUsecase interface {
	// ResolveSession verifies a session token and loads the caller's current role.
	// The first verified sign-in of a subject registers the user.
	ResolveSession(ctx context.Context, token string) (*entity.Session, error)

	// AssignAdmin promotes the session's user when the configured admin policy allows it.
	AssignAdmin(ctx context.Context, session *entity.Session) error
}
