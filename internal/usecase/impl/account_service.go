package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"localguide/config"
	deliverycontext "localguide/internal/delivery/context"
	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/domain/service"
	"localguide/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo       repository.UserRepository
	tokenService   service.TokenService
	adminEmails    []string
	adminBootstrap bool
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Admin != nil {
		for _, email := range params.Config.Admin.Emails {
			if normalized := normalizeEmail(email); normalized != "" {
				srv.adminEmails = append(srv.adminEmails, normalized)
			}
		}
		srv.adminBootstrap = params.Config.Admin.Bootstrap
	}

	return srv
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveSession verifies the token and returns the caller's session with the stored role.
func (srv *accountService) ResolveSession(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, err.Error())
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrNotAuthenticated.WrapMessage("token has no subject")
	}

	user, err := srv.userRepo.FindOrCreate(ctx, &entity.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  entity.RoleUser,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	return &entity.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

// AssignAdmin promotes the caller when their email is allowlisted, or when bootstrap
// mode is on and no admin exists yet.
func (srv *accountService) AssignAdmin(ctx context.Context, session *entity.Session) error {
	if err := usecase.RequireSession(session); err != nil {
		return err
	}
	if session.IsAdmin() {
		return nil
	}

	allowed := slices.Contains(srv.adminEmails, normalizeEmail(session.Email))
	if !allowed && srv.adminBootstrap {
		admins, err := srv.userRepo.CountByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to count admins")
		}
		allowed = admins == 0
	}
	if !allowed {
		srv.log(ctx).Warn("Admin assignment refused", slog.String("user_id", session.UserID))

		return domainerrors.ErrAdminRequired
	}

	if err := srv.userRepo.UpdateRole(ctx, session.UserID, entity.RoleAdmin); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotAuthenticated
		}

		return errors.Wrap(err, "failed to assign admin role")
	}

	srv.log(ctx).Info("Admin role assigned", slog.String("user_id", session.UserID))

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
