package transactions

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openshelf/library-api/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_transactions_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Author{},
		&entities.Publisher{},
		&entities.Book{},
		&entities.Transaction{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func newTestTransaction(userID string, bookID uint, reserved bool) *entities.Transaction {
	return &entities.Transaction{
		UserID:          userID,
		BookID:          bookID,
		TransactionDate: time.Now(),
		Reserved:        reserved,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	transaction := newTestTransaction("READER0001", 1, true)

	err := repo.Create(transaction)

	require.NoError(t, err)
	assert.NotZero(t, transaction.TransactionID)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(newTestTransaction("READER0001", 1, true)))
	require.NoError(t, repo.Create(newTestTransaction("READER0001", 2, false)))
	require.NoError(t, repo.Create(newTestTransaction("READER0002", 1, false)))

	list, err := repo.ListByUser("READER0001")

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	transaction := newTestTransaction("READER0001", 1, true)
	require.NoError(t, repo.Create(transaction))

	err := repo.Update(transaction.TransactionID, map[string]any{"reserved": false})
	require.NoError(t, err)

	updated, err := repo.GetByID(transaction.TransactionID)
	require.NoError(t, err)
	assert.False(t, updated.Reserved)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Update(999, map[string]any{"reserved": false})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
