package entities

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Token roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	// DefaultUserName is assigned at registration
	DefaultUserName = "User"
	// MinPasswordLength applies at registration
	MinPasswordLength = 6
	// MinNewPasswordLength applies when changing a password
	MinNewPasswordLength = 8
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateMobile reports whether mobile is exactly ten ASCII digits
func ValidateMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// User represents a user entity
type User struct {
	ID              uuid.UUID       `json:"id"`
	Mobile          string          `json:"mobile"`
	Name            string          `json:"name"`
	Email           *string         `json:"email,omitempty"`
	PasswordHash    string          `json:"-"`
	IsAdmin         bool            `json:"isAdmin"`
	AdminPrivileges []string        `json:"adminPrivileges,omitempty"`
	Balance         decimal.Decimal `json:"balance"`
	Verified        bool            `json:"verified"`
	Version         int64           `json:"-"`
	LastLoginAt     *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Role returns the role embedded in tokens issued for the user
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// RegisterInput represents input for registration
type RegisterInput struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Device   string `json:"-"`
	Location string `json:"-"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

// UpdateProfileInput carries the optional profile fields. Nil means unchanged.
type UpdateProfileInput struct {
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
