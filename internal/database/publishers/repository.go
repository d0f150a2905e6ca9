// Package publishers provides database operations for publishers.
package publishers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all publisher database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new publishers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a publisher and fills in the generated id.
func (r *Repository) Create(publisher *entities.Publisher) error {
	return r.db.Create(publisher).Error
}

// GetByID retrieves a publisher by id.
func (r *Repository) GetByID(id uint) (*entities.Publisher, error) {
	var publisher entities.Publisher
	err := r.db.First(&publisher, id).Error
	if err != nil {
		return nil, err
	}
	return &publisher, nil
}

// GetOrCreate looks a publisher up by exact name and creates one if absent.
func (r *Repository) GetOrCreate(name string) (*entities.Publisher, error) {
	return GetOrCreate(r.db, name)
}

// GetOrCreate resolves a publisher by exact name inside the given db handle,
// which may be a transaction.
func GetOrCreate(db *gorm.DB, name string) (*entities.Publisher, error) {
	var publisher entities.Publisher
	err := db.Where("publisher_name = ?", name).First(&publisher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		publisher = entities.Publisher{PublisherName: name}
		if err := db.Create(&publisher).Error; err != nil {
			return nil, err
		}
		return &publisher, nil
	}
	if err != nil {
		return nil, err
	}
	return &publisher, nil
}

// List retrieves all publishers.
func (r *Repository) List() ([]entities.Publisher, error) {
	var publishers []entities.Publisher
	err := r.db.Find(&publishers).Error
	return publishers, err
}

// Update applies a partial update to an existing publisher.
func (r *Repository) Update(id uint, updates map[string]any) error {
	var publisher entities.Publisher
	if err := r.db.Select("publisher_id").First(&publisher, id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Publisher{PublisherID: id}).Updates(updates).Error
}
