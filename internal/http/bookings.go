package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/bookings"
	"github.com/openshelf/library-api/internal/entities"
)

type BookingsController struct {
	repo *bookings.Repository
}

func NewBookingsController(repo *bookings.Repository) *BookingsController {
	return &BookingsController{repo: repo}
}

// Get lists bookings. Filter precedence: booking_id, then user_id, then
// book_id, then everything.
func (controller *BookingsController) Get(c *gin.Context) {
	bookingID, present, ok := parseQueryID(c, "booking_id")
	if !ok {
		return
	}
	if present {
		booking, err := controller.repo.GetByID(bookingID)
		if err != nil {
			respondRepositoryError(c, err, "booking")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
		return
	}

	var list []entities.Booking
	var err error
	if userID := c.Query("user_id"); userID != "" {
		list, err = controller.repo.ListByUser(userID)
	} else if bookID, present, ok := parseQueryID(c, "book_id"); !ok {
		return
	} else if present {
		list, err = controller.repo.ListByBook(bookID)
	} else {
		list, err = controller.repo.List()
	}
	if err != nil {
		respondRepositoryError(c, err, "booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "bookings": list})
}

type createBookingRequest struct {
	UserID          string  `json:"user_id"`
	BookID          *uint   `json:"book_id"`
	BookingDate     *string `json:"booking_date"`
	DueDate         *string `json:"due_date"`
	CurrentlyBooked *bool   `json:"currently_booked"`
	PendingReturn   *bool   `json:"pending_return"`
}

func (controller *BookingsController) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}
	if req.UserID == "" {
		respondBadRequest(c, "user_id is required")
		return
	}
	if req.BookID == nil {
		respondBadRequest(c, "book_id is required")
		return
	}
	if req.DueDate == nil {
		respondBadRequest(c, "due_date is required")
		return
	}

	dueDate, err := parseTimestamp(*req.DueDate)
	if err != nil {
		respondBadRequest(c, "due_date must use the format "+timestampLayout)
		return
	}
	bookingDate, ok := timestampOrNow(c, req.BookingDate, "booking_date")
	if !ok {
		return
	}

	booking := &entities.Booking{
		UserID:          req.UserID,
		BookID:          *req.BookID,
		BookingDate:     bookingDate,
		DueDate:         dueDate,
		CurrentlyBooked: true,
		PendingReturn:   false,
	}
	if req.CurrentlyBooked != nil {
		booking.CurrentlyBooked = *req.CurrentlyBooked
	}
	if req.PendingReturn != nil {
		booking.PendingReturn = *req.PendingReturn
	}

	if err := controller.repo.Create(booking); err != nil {
		respondRepositoryError(c, err, "booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Booking created successfully",
		"booking_id": booking.BookingID,
	})
}

type updateBookingRequest struct {
	UserID          *string `json:"user_id"`
	BookID          *uint   `json:"book_id"`
	BookingDate     *string `json:"booking_date"`
	DueDate         *string `json:"due_date"`
	CurrentlyBooked *bool   `json:"currently_booked"`
	PendingReturn   *bool   `json:"pending_return"`
}

// Update applies a partial update over the allow-listed booking fields.
func (controller *BookingsController) Update(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}

	updates := map[string]any{}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	if req.BookID != nil {
		updates["book_id"] = *req.BookID
	}
	if req.BookingDate != nil {
		bookingDate, err := parseTimestamp(*req.BookingDate)
		if err != nil {
			respondBadRequest(c, "booking_date must use the format "+timestampLayout)
			return
		}
		updates["booking_date"] = bookingDate
	}
	if req.DueDate != nil {
		dueDate, err := parseTimestamp(*req.DueDate)
		if err != nil {
			respondBadRequest(c, "due_date must use the format "+timestampLayout)
			return
		}
		updates["due_date"] = dueDate
	}
	if req.CurrentlyBooked != nil {
		updates["currently_booked"] = *req.CurrentlyBooked
	}
	if req.PendingReturn != nil {
		updates["pending_return"] = *req.PendingReturn
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(bookingID, updates); err != nil {
		respondRepositoryError(c, err, "booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Booking updated successfully",
		"booking_id": bookingID,
	})
}
