package usecases

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"betx.backend/internal/domain/entities"
	domainerrors "betx.backend/internal/domain/errors"
	"betx.backend/internal/domain/repositories"
	"betx.backend/pkg/crypto"
	"betx.backend/pkg/utils"
)

// UserUsecase handles profile and account management
type UserUsecase struct {
	userRepo repositories.UserRepository
	txRepo   repositories.TransactionRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, txRepo repositories.TransactionRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, txRepo: txRepo}
}

// UpdateProfile applies the supplied name and mobile. Empty values are ignored.
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error) {
	user, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			user.Name = name
		}
	}

	if input.Mobile != nil && *input.Mobile != "" {
		mobile := *input.Mobile
		if !entities.ValidateMobile(mobile) {
			return nil, domainerrors.Validation("Invalid mobile number format")
		}
		if mobile != user.Mobile {
			existing, err := u.userRepo.GetByMobile(ctx, mobile)
			if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != user.ID {
				return nil, domainerrors.Conflict("Mobile number already registered")
			}
			user.Mobile = mobile
		}
	}

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Mobile number already registered")
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password after verifying the current one
func (u *UserUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.Validation("Current and new password are required")
	}
	if utf8.RuneCountInString(input.NewPassword) < entities.MinNewPasswordLength {
		return domainerrors.Validation("Password must be at least 8 characters")
	}

	user, err := u.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.Unauthorized("Current password is incorrect")
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, hash)
}

// ListUsers returns a page of users matching search on mobile or name
func (u *UserUsecase) ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	pagination := utils.GetPaginationParams(page, limit)
	users, total, err := u.userRepo.List(ctx, search, pagination)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, pagination), nil
}

// ListTransactions returns the newest admin adjustments targeting userID
func (u *UserUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entities.Transaction, error) {
	if _, err := u.getUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.txRepo.ListByUser(ctx, userID, utils.GetPaginationParams(1, limit).Limit)
}

func (u *UserUsecase) getUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
