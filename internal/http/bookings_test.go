package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBooking(t *testing.T, router *gin.Engine, userID string, bookID uint) {
	t.Helper()

	w := performRequest(t, router, "POST", "/api/bookings", gin.H{
		"user_id":  userID,
		"book_id":  bookID,
		"due_date": "2026-09-15 18:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBookingsController_Create(t *testing.T) {
	t.Run("creates a booking with default flags", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		createTestBooking(t, router, "READER0001", 1)

		fetched := parseResponse(t, performRequest(t, router, "GET", "/api/bookings?booking_id=1", nil))
		booking := fetched["booking"].(map[string]interface{})
		assert.Equal(t, true, booking["currently_booked"])
		assert.Equal(t, false, booking["pending_return"])
		assert.NotEmpty(t, booking["booking_date"])
	})

	t.Run("returns 400 when due_date is missing", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(t, router, "POST", "/api/bookings", gin.H{
			"user_id": "READER0001",
			"book_id": 1,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "due_date is required")
	})

	t.Run("returns 400 for a malformed due_date", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(t, router, "POST", "/api/bookings", gin.H{
			"user_id":  "READER0001",
			"book_id":  1,
			"due_date": "next tuesday",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingsController_Get(t *testing.T) {
	t.Run("filters by user before book", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		createTestBooking(t, router, "READER0001", 1)
		createTestBooking(t, router, "READER0001", 2)
		createTestBooking(t, router, "READER0002", 1)

		byUser := parseResponse(t, performRequest(t, router, "GET", "/api/bookings?user_id=READER0001", nil))
		assert.Equal(t, float64(2), byUser["count"])

		byBook := parseResponse(t, performRequest(t, router, "GET", "/api/bookings?book_id=1", nil))
		assert.Equal(t, float64(2), byBook["count"])

		// user_id wins when both filters are present.
		both := parseResponse(t, performRequest(t, router, "GET", "/api/bookings?user_id=READER0002&book_id=2", nil))
		assert.Equal(t, float64(1), both["count"])

		all := parseResponse(t, performRequest(t, router, "GET", "/api/bookings", nil))
		assert.Equal(t, float64(3), all["count"])
	})

	t.Run("returns 404 for an unknown booking id", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(t, router, "GET", "/api/bookings?booking_id=999", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookingsController_Update(t *testing.T) {
	t.Run("marks a booking as returned", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		createTestBooking(t, router, "READER0001", 1)

		w := performRequest(t, router, "PUT", "/api/bookings/1", gin.H{
			"currently_booked": false,
			"pending_return":   true,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		fetched := parseResponse(t, performRequest(t, router, "GET", "/api/bookings?booking_id=1", nil))
		booking := fetched["booking"].(map[string]interface{})
		assert.Equal(t, false, booking["currently_booked"])
		assert.Equal(t, true, booking["pending_return"])
	})

	t.Run("returns 400 for an empty update", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		createTestBooking(t, router, "READER0001", 1)

		w := performRequest(t, router, "PUT", "/api/bookings/1", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "no valid fields to update")
	})

	t.Run("returns 404 for an unknown booking", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(t, router, "PUT", "/api/bookings/999", gin.H{"pending_return": true})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
