package usecases

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/domain/repositories"
	"betx.backend/pkg/crypto"
	"betx.backend/pkg/jwt"
	"betx.backend/pkg/logger"
)

const invalidCredentialsMessage = "Invalid mobile or password"

// TokenRevoker stores revoked token ids until they expire
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	statsRepo    repositories.StatsRepository
	activityRepo repositories.ActivityRepository
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
	revoker      TokenRevoker
	now          func() time.Time
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	statsRepo repositories.StatsRepository,
	activityRepo repositories.ActivityRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	revoker TokenRevoker,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		activityRepo: activityRepo,
		uow:          uow,
		jwtService:   jwtService,
		revoker:      revoker,
		now:          time.Now,
	}
}

// Register creates a user and its zero stats record in one unit of work
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	mobile := input.Mobile
	if mobile == "" || input.Password == "" {
		return nil, domainerrors.Validation("Mobile and password are required")
	}
	if !entities.ValidateMobile(mobile) {
		return nil, domainerrors.Validation("Please enter a valid 10-digit mobile number")
	}
	if utf8.RuneCountInString(input.Password) < entities.MinPasswordLength {
		return nil, domainerrors.Validation("Password must be at least 6 characters")
	}

	_, err := u.userRepo.GetByMobile(ctx, mobile)
	if err == nil {
		return nil, domainerrors.Conflict("Mobile number already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Mobile:       mobile,
		Name:         entities.DefaultUserName,
		PasswordHash: passwordHash,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.statsRepo.Create(txCtx, entities.NewStats(user.ID))
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Mobile number already registered")
		}
		return nil, err
	}

	logger.Info(ctx, "User registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials, records the login and issues a token.
// Unknown mobile and wrong password produce the same error.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	mobile := input.Mobile
	if mobile == "" || input.Password == "" {
		return nil, domainerrors.Validation("Mobile and password are required")
	}
	if !entities.ValidateMobile(mobile) {
		return nil, domainerrors.Validation("Please enter a valid 10-digit mobile number")
	}

	user, err := u.userRepo.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials(invalidCredentialsMessage)
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials(invalidCredentialsMessage)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.TouchLastLogin(txCtx, user.ID); err != nil {
			return err
		}
		return u.activityRepo.Create(txCtx, entities.NewActivity(user.ID, entities.ActivityLogin, entities.ActivityDetails{
			Device:   input.Device,
			Location: input.Location,
			Status:   "success",
		}))
	})
	if err != nil {
		return nil, err
	}
	now := u.now()
	user.LastLoginAt = &now

	token, claims, err := u.jwtService.GenerateToken(user.ID, user.Role())
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

// Logout revokes the token id for the rest of its lifetime
func (u *AuthUsecase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return domainerrors.Unauthorized("Please authenticate")
	}
	return u.revoker.Revoke(ctx, tokenID, expiresAt.Sub(u.now()))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
