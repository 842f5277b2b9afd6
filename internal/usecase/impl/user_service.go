// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "deliwer/internal/delivery/context"
	"deliwer/internal/domain/constants"
	"deliwer/internal/domain/entity"
	domainerrors "deliwer/internal/domain/errors"
	"deliwer/internal/domain/repository"
	"deliwer/internal/domain/service"
	"deliwer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new climate hero.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Country:      strings.TrimSpace(input.Country),
		City:         strings.TrimSpace(input.City),
		HeroType:     strings.TrimSpace(input.HeroType),
		HeroLevel:    constants.DefaultHeroLevel,
		Achievements: []string{},
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to register user")
		}

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.metrics.UserRegistered()
	srv.log(ctx).Info("Hero registered",
		slog.String("user_id", user.ID.String()),
		slog.String("country", user.Country),
	)

	return user, nil
}

// GetUser retrieves a hero by ID.
func (srv *userService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateUserError(err, "failed to find user")
	}

	return user, nil
}

// SetPoints overwrites the hero points.
func (srv *userService) SetPoints(ctx context.Context, userID uuid.UUID, points int) (*entity.User, error) {
	if points < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points must not be negative")
	}

	user, err := srv.userRepo.SetPoints(ctx, userID, points)
	if err != nil {
		return nil, translateUserError(err, "failed to set hero points")
	}

	return user, nil
}

// SetLevel overwrites the hero level.
func (srv *userService) SetLevel(ctx context.Context, userID uuid.UUID, level int) (*entity.User, error) {
	if level < constants.DefaultHeroLevel {
		return nil, domainerrors.ErrValidationFailed.WithDetails("level must be at least 1")
	}

	user, err := srv.userRepo.SetLevel(ctx, userID, level)
	if err != nil {
		return nil, translateUserError(err, "failed to set hero level")
	}

	return user, nil
}

// AddAchievement appends an achievement once.
func (srv *userService) AddAchievement(ctx context.Context, userID uuid.UUID, achievement string) (*entity.User, error) {
	achievement = strings.TrimSpace(achievement)
	if achievement == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("achievement must not be blank")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewUserRepository()
		current, err := repo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if slices.Contains(current.Achievements, achievement) {
			user = current

			return nil
		}

		user, err = repo.AddAchievement(ctx, userID, achievement)

		return err
	})
	if err != nil {
		return nil, translateUserError(err, "failed to add achievement")
	}

	return user, nil
}

func translateUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, message)
	}

	return errors.Wrap(err, message)
}
