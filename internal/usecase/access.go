package usecase

import (
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
)

// RequireSession fails with ErrNotAuthenticated when the request carries no verified session.
func RequireSession(session *entity.Session) error {
	if session == nil || session.UserID == "" {
		return domainerrors.ErrNotAuthenticated
	}

	return nil
}

// RequireAdmin is the admin gate shared by handlers and usecases: anonymous callers get ErrNotAuthenticated,
// signed-in non-admins get ErrAdminRequired.
func RequireAdmin(session *entity.Session) error {
	if err := RequireSession(session); err != nil {
		return err
	}
	if !session.IsAdmin() {
		return domainerrors.ErrAdminRequired
	}

	return nil
}
