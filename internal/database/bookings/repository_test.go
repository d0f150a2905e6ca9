package bookings

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
	dbPath := "./test_bookings_" + t.Name() + ".db"

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
		&entities.Booking{},
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

func newTestBooking(userID string, bookID uint) *entities.Booking {
	now := time.Now()
	return &entities.Booking{
		UserID:          userID,
		BookID:          bookID,
		BookingDate:     now,
		DueDate:         now.AddDate(0, 0, 14),
		CurrentlyBooked: true,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	booking := newTestBooking("READER0001", 1)

	err := repo.Create(booking)

	require.NoError(t, err)
	assert.NotZero(t, booking.BookingID)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID(999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListByUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(newTestBooking("READER0001", 1)))
	require.NoError(t, repo.Create(newTestBooking("READER0001", 2)))
	require.NoError(t, repo.Create(newTestBooking("READER0002", 1)))

	list, err := repo.ListByUser("READER0001")

	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, booking := range list {
		assert.Equal(t, "READER0001", booking.UserID)
	}
}

func TestRepository_ListByBook(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(newTestBooking("READER0001", 1)))
	require.NoError(t, repo.Create(newTestBooking("READER0002", 1)))
	require.NoError(t, repo.Create(newTestBooking("READER0002", 2)))

	list, err := repo.ListByBook(1)

	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, booking := range list {
		assert.Equal(t, uint(1), booking.BookID)
	}
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	booking := newTestBooking("READER0001", 1)
	require.NoError(t, repo.Create(booking))

	err := repo.Update(booking.BookingID, map[string]any{
		"currently_booked": false,
		"pending_return":   true,
	})
	require.NoError(t, err)

	updated, err := repo.GetByID(booking.BookingID)
	require.NoError(t, err)
	assert.False(t, updated.CurrentlyBooked)
	assert.True(t, updated.PendingReturn)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Update(999, map[string]any{"pending_return": true})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
