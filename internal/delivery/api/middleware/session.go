package middleware

import (
	"log/slog"
	"strings"

	"localguide/config"
	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/errors"
	"localguide/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	contextKeySession = "session"
	bearerPrefix      = "Bearer "
)

// SessionMiddleware attaches the caller's session, if any, on routes that act on the caller.
// Handlers decide whether a session is required.
type SessionMiddleware struct {
	accountUC  usecase.AccountUsecase
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(accountUC usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	cookieName := "session"
	if cfg.Session != nil && cfg.Session.CookieName != "" {
		cookieName = cfg.Session.CookieName
	}

	return &SessionMiddleware{
		accountUC:  accountUC,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Resolve reads the session token from the Authorization header or the session cookie.
// Missing or rejected tokens leave the request anonymous.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		session, err := m.accountUC.ResolveSession(ctx, token)
		switch {
		case err == nil:
			SetSession(c, session)
		case errors.Is(err, domainerrors.ErrNotAuthenticated):
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Ignoring rejected session token", slog.Any("error", err))
		default:
			return errors.WithStack(err)
		}

		return next(c)
	}
}

func (m *SessionMiddleware) extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// SetSession stores the resolved session on the echo context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(contextKeySession, session)
}

// GetSession returns the session of the current request, or nil when anonymous.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(contextKeySession).(*entity.Session)

	return session
}
