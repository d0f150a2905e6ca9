// Package bookings provides database operations for book loans.
package bookings

import (
	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all booking database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a booking and fills in the generated id.
func (r *Repository) Create(booking *entities.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID retrieves a booking by id.
func (r *Repository) GetByID(id uint) (*entities.Booking, error) {
	var booking entities.Booking
	err := r.db.First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List retrieves all bookings.
func (r *Repository) List() ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.Find(&bookings).Error
	return bookings, err
}

// ListByUser retrieves all bookings made by a user.
func (r *Repository) ListByUser(userID string) ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.Where("user_id = ?", userID).Find(&bookings).Error
	return bookings, err
}

// ListByBook retrieves all bookings for a book.
func (r *Repository) ListByBook(bookID uint) ([]entities.Booking, error) {
	var bookings []entities.Booking
	err := r.db.Where("book_id = ?", bookID).Find(&bookings).Error
	return bookings, err
}

// Update applies a partial update to an existing booking.
func (r *Repository) Update(id uint, updates map[string]any) error {
	var booking entities.Booking
	if err := r.db.Select("booking_id").First(&booking, id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Booking{BookingID: id}).Updates(updates).Error
}
