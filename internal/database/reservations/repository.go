// Package reservations provides database operations for reservations.
package reservations

import (
	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all reservation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reservations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation and fills in the generated id.
func (r *Repository) Create(reservation *entities.Reservation) error {
	return r.db.Create(reservation).Error
}

// GetByID retrieves a reservation by id.
func (r *Repository) GetByID(id uint) (*entities.Reservation, error) {
	var reservation entities.Reservation
	err := r.db.First(&reservation, id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List retrieves all reservations.
func (r *Repository) List() ([]entities.Reservation, error) {
	var reservations []entities.Reservation
	err := r.db.Find(&reservations).Error
	return reservations, err
}

// ListByUser retrieves all reservations made by a user.
func (r *Repository) ListByUser(userID string) ([]entities.Reservation, error) {
	var reservations []entities.Reservation
	err := r.db.Where("user_id = ?", userID).Find(&reservations).Error
	return reservations, err
}

// ListByBook retrieves all reservations for a book.
func (r *Repository) ListByBook(bookID uint) ([]entities.Reservation, error) {
	var reservations []entities.Reservation
	err := r.db.Where("book_id = ?", bookID).Find(&reservations).Error
	return reservations, err
}

// Update applies a partial update to an existing reservation.
func (r *Repository) Update(id uint, updates map[string]any) error {
	var reservation entities.Reservation
	if err := r.db.Select("reservation_id").First(&reservation, id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Reservation{ReservationID: id}).Updates(updates).Error
}
