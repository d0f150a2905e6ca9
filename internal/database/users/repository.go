// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByUsername(username)
package users

import (
	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a user. The caller supplies a fully resolved record,
// including the generated UserID and password hash.
func (r *Repository) Create(user *entities.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their 10-character id.
func (r *Repository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByID reports whether a user id is already taken.
func (r *Repository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Where("user_id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByUsernameOrEmail reports whether a username or email is already in
// use. The storage unique constraints remain the source of truth under
// concurrent signups.
func (r *Repository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// List retrieves all users.
func (r *Repository) List() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Find(&users).Error
	return users, err
}

// Update applies a partial update to an existing user. Returns
// gorm.ErrRecordNotFound when the id does not resolve.
func (r *Repository) Update(id string, updates map[string]any) error {
	var user entities.User
	if err := r.db.Select("user_id").First(&user, "user_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.User{UserID: id}).Updates(updates).Error
}
