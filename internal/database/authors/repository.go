// Package authors provides database operations for authors.
package authors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an author and fills in the generated id.
func (r *Repository) Create(author *entities.Author) error {
	return r.db.Create(author).Error
}

// GetByID retrieves an author by id.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetOrCreate looks an author up by exact name and creates one if absent.
func (r *Repository) GetOrCreate(name string) (*entities.Author, error) {
	return GetOrCreate(r.db, name)
}

// GetOrCreate resolves an author by exact name inside the given db handle,
// which may be a transaction.
func GetOrCreate(db *gorm.DB, name string) (*entities.Author, error) {
	var author entities.Author
	err := db.Where("author_name = ?", name).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		author = entities.Author{AuthorName: name}
		if err := db.Create(&author).Error; err != nil {
			return nil, err
		}
		return &author, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List retrieves all authors.
func (r *Repository) List() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Find(&authors).Error
	return authors, err
}

// Update applies a partial update to an existing author.
func (r *Repository) Update(id uint, updates map[string]any) error {
	var author entities.Author
	if err := r.db.Select("author_id").First(&author, id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Author{AuthorID: id}).Updates(updates).Error
}
