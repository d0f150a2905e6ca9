// Package books provides database operations for the book catalog.
//
// Creating a book resolves its author (and optional publisher) by name,
// creating them on the fly when absent. All of that happens inside a single
// transaction so a failed book insert never leaves behind a freshly created
// author or publisher row.
package books

import (
	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/database/authors"
	"github.com/openshelf/library-api/internal/database/publishers"
	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a book, resolving authorName and publisherName to ids
// via get-or-create. publisherName may be nil; the book then has no
// publisher. The whole operation is atomic.
func (r *Repository) Create(book *entities.Book, authorName string, publisherName *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		author, err := authors.GetOrCreate(tx, authorName)
		if err != nil {
			return err
		}
		book.AuthorID = author.AuthorID

		if publisherName != nil && *publisherName != "" {
			publisher, err := publishers.GetOrCreate(tx, *publisherName)
			if err != nil {
				return err
			}
			book.PublisherID = &publisher.PublisherID
		}

		return tx.Create(book).Error
	})
}

// GetByID retrieves a book by id.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List retrieves all books.
func (r *Repository) List() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// Update applies a partial update to an existing book.
func (r *Repository) Update(id uint, updates map[string]any) error {
	var book entities.Book
	if err := r.db.Select("book_id").First(&book, id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Book{BookID: id}).Updates(updates).Error
}
