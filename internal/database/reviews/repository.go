// Package reviews provides database operations for book reviews.
//
// A review is keyed by (BookID, UserID). Upsert applies insert-or-update
// semantics on that key: submitting a second review for the same pair
// overwrites the first instead of failing.
package reviews

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openshelf/library-api/internal/entities"
)

// ErrInvalidRating is returned when a rating falls outside [1, 5].
var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts a review or, when one already exists for the same
// (book, user) pair, overwrites its rating, date and description.
func (r *Repository) Upsert(review *entities.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "book_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "review_date", "description"}),
	}).Create(review).Error
}

// Get retrieves the review for a (book, user) pair.
func (r *Repository) Get(bookID uint, userID string) (*entities.Review, error) {
	var review entities.Review
	err := r.db.Where("book_id = ? AND user_id = ?", bookID, userID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List retrieves all reviews.
func (r *Repository) List() ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Find(&reviews).Error
	return reviews, err
}

// ListByUser retrieves all reviews written by a user.
func (r *Repository) ListByUser(userID string) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("user_id = ?", userID).Find(&reviews).Error
	return reviews, err
}

// ListByBook retrieves all reviews for a book.
func (r *Repository) ListByBook(bookID uint) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where("book_id = ?", bookID).Find(&reviews).Error
	return reviews, err
}

// Update applies a partial update to an existing review. A rating present
// in the update map is re-validated against [1, 5].
func (r *Repository) Update(bookID uint, userID string, updates map[string]any) error {
	if rating, ok := updates["rating"]; ok {
		if v, ok := rating.(int); !ok || v < 1 || v > 5 {
			return ErrInvalidRating
		}
	}
	var review entities.Review
	if err := r.db.Select("book_id").Where("book_id = ? AND user_id = ?", bookID, userID).First(&review).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Review{}).
		Where("book_id = ? AND user_id = ?", bookID, userID).
		Updates(updates).Error
}
