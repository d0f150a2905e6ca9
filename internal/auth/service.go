package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/config"
	"github.com/openshelf/library-api/internal/database/users"
	"github.com/openshelf/library-api/internal/entities"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("username or email already exists")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so the response does not leak which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service handles signup, login and password changes.
type Service struct {
	users  *users.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{
		users:  repo,
		config: cfg,
	}
}

// Signup registers a new user: hashes the password, generates a unique
// 10-character user id and inserts the row. The username/email pre-check is
// advisory; a concurrent signup racing past it is caught by the storage
// unique constraints and still reported as ErrUserExists.
func (s *Service) Signup(username, email, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	taken, err := s.users.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	userID, err := GenerateUserID(s.users.ExistsByID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := &entities.User{
		UserID:       userID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates credentials and returns the user.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

// ChangePassword verifies the current password and stores a hash of the
// new one. The new password is length-checked before the current password
// is verified, so a weak replacement is rejected outright.
func (s *Service) ChangePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := CheckPassword(currentPassword, user.PasswordHash); err != nil {
		return err
	}

	newHash, err := HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		return err
	}

	return s.users.Update(userID, map[string]any{"password_hash": newHash})
}
