package reviews

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
	dbPath := "./test_reviews_" + t.Name() + ".db"

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
		&entities.Review{},
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

func newTestReview(bookID uint, userID string, rating int) *entities.Review {
	return &entities.Review{
		BookID:     bookID,
		UserID:     userID,
		Rating:     rating,
		ReviewDate: time.Now(),
	}
}

func TestRepository_Upsert_Insert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Upsert(newTestReview(1, "READER0001", 4))

	require.NoError(t, err)

	review, err := repo.Get(1, "READER0001")
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestRepository_Upsert_OverwritesExisting(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(newTestReview(1, "READER0001", 2)))

	description := "Much better on a second read."
	second := newTestReview(1, "READER0001", 5)
	second.Description = &description
	require.NoError(t, repo.Upsert(second))

	review, err := repo.Get(1, "READER0001")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	require.NotNil(t, review.Description)
	assert.Equal(t, description, *review.Description)

	// Still a single row for the pair.
	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_Upsert_InvalidRating(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	assert.ErrorIs(t, repo.Upsert(newTestReview(1, "READER0001", 0)), ErrInvalidRating)
	assert.ErrorIs(t, repo.Upsert(newTestReview(1, "READER0001", 6)), ErrInvalidRating)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Get(1, "MISSING000")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListByBookAndUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(newTestReview(1, "READER0001", 4)))
	require.NoError(t, repo.Upsert(newTestReview(1, "READER0002", 3)))
	require.NoError(t, repo.Upsert(newTestReview(2, "READER0001", 5)))

	byBook, err := repo.ListByBook(1)
	require.NoError(t, err)
	assert.Len(t, byBook, 2)

	byUser, err := repo.ListByUser("READER0001")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(newTestReview(1, "READER0001", 2)))

	err := repo.Update(1, "READER0001", map[string]any{"rating": 5})
	require.NoError(t, err)

	review, err := repo.Get(1, "READER0001")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestRepository_Update_InvalidRating(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(newTestReview(1, "READER0001", 2)))

	err := repo.Update(1, "READER0001", map[string]any{"rating": 9})

	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Update(1, "MISSING000", map[string]any{"rating": 3})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
