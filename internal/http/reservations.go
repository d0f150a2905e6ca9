package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/reservations"
	"github.com/openshelf/library-api/internal/entities"
)

type ReservationsController struct {
	repo *reservations.Repository
}

func NewReservationsController(repo *reservations.Repository) *ReservationsController {
	return &ReservationsController{repo: repo}
}

// Get lists reservations. Filter precedence: reservation_id, then user_id,
// then book_id, then everything.
func (controller *ReservationsController) Get(c *gin.Context) {
	reservationID, present, ok := parseQueryID(c, "reservation_id")
	if !ok {
		return
	}
	if present {
		reservation, err := controller.repo.GetByID(reservationID)
		if err != nil {
			respondRepositoryError(c, err, "reservation")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "reservation": reservation})
		return
	}

	var list []entities.Reservation
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
		respondRepositoryError(c, err, "reservation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "reservations": list})
}

type createReservationRequest struct {
	UserID          string  `json:"user_id"`
	BookID          *uint   `json:"book_id"`
	ReservationDate *string `json:"reservation_date"`
}

func (controller *ReservationsController) Create(c *gin.Context) {
	var req createReservationRequest
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

	reservationDate, ok := timestampOrNow(c, req.ReservationDate, "reservation_date")
	if !ok {
		return
	}

	reservation := &entities.Reservation{
		UserID:          req.UserID,
		BookID:          *req.BookID,
		ReservationDate: reservationDate,
	}
	if err := controller.repo.Create(reservation); err != nil {
		respondRepositoryError(c, err, "reservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Reservation created successfully",
		"reservation_id": reservation.ReservationID,
	})
}

type updateReservationRequest struct {
	UserID          *string `json:"user_id"`
	BookID          *uint   `json:"book_id"`
	ReservationDate *string `json:"reservation_date"`
}

// Update applies a partial update over the allow-listed reservation fields.
func (controller *ReservationsController) Update(c *gin.Context) {
	reservationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateReservationRequest
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
	if req.ReservationDate != nil {
		reservationDate, err := parseTimestamp(*req.ReservationDate)
		if err != nil {
			respondBadRequest(c, "reservation_date must use the format "+timestampLayout)
			return
		}
		updates["reservation_date"] = reservationDate
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(reservationID, updates); err != nil {
		respondRepositoryError(c, err, "reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Reservation updated successfully",
		"reservation_id": reservationID,
	})
}
