// Package transactions provides database operations for the borrow and
// reserve history.
package transactions

import (
	"gorm.io/gorm"

	"github.com/openshelf/library-api/internal/entities"
)

// Repository handles all transaction-history database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new transactions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a transaction and fills in the generated id.
func (r *Repository) Create(transaction *entities.Transaction) error {
	return r.db.Create(transaction).Error
}

// GetByID retrieves a transaction by id.
func (r *Repository) GetByID(id uint) (*entities.Transaction, error) {
	var transaction entities.Transaction
	err := r.db.First(&transaction, id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// List retrieves all transactions.
func (r *Repository) List() ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	err := r.db.Find(&transactions).Error
	return transactions, err
}

// ListByUser retrieves all transactions recorded for a user.
func (r *Repository) ListByUser(userID string) ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	err := r.db.Where("user_id = ?", userID).Find(&transactions).Error
	return transactions, err
}

// ListByBook retrieves all transactions recorded for a book.
func (r *Repository) ListByBook(bookID uint) ([]entities.Transaction, error) {
	var transactions []entities.Transaction
	err := r.db.Where("book_id = ?", bookID).Find(&transactions).Error
	return transactions, err
}

// Update applies a partial update to an existing transaction.
func (r *Repository) Update(id uint, updates map[string]any) error {
	var transaction entities.Transaction
	if err := r.db.Select("transaction_id").First(&transaction, id).Error; err != nil {
		return err
	}
	return r.db.Model(&entities.Transaction{TransactionID: id}).Updates(updates).Error
}
