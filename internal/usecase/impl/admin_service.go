package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerTokenType = "Bearer"

type adminService struct {
	username     string
	passwordHash string
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService creates a new back-office login service
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	srv := &adminService{
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
	if params.Config.Admin != nil {
		srv.username = params.Config.Admin.Username
		srv.passwordHash = params.Config.Admin.PasswordHash
	}

	return srv
}

// Login checks the configured admin credentials and issues an access token.
// Without a configured password hash every login fails.
func (srv *adminService) Login(ctx context.Context, username, password string) (*usecase.AdminToken, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if srv.username == "" || srv.passwordHash == "" {
		log.Warn("Admin login attempted but no admin credentials are configured")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login disabled")
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(srv.username)) == 1
	passwordOK := srv.hasher.Check(password, srv.passwordHash)
	if !usernameOK || !passwordOK {
		log.Info("Admin login rejected", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(srv.username, entity.Roles{entity.RoleAdmin}.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	log.Info("Admin logged in", slog.String("username", username))

	return &usecase.AdminToken{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresAt:   expiresAt,
	}, nil
}
