package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/reviews"
	"github.com/openshelf/library-api/internal/entities"
)

type ReviewsController struct {
	repo *reviews.Repository
}

func NewReviewsController(repo *reviews.Repository) *ReviewsController {
	return &ReviewsController{repo: repo}
}

// Get lists reviews. When both book_id and user_id are given the single
// review for that pair is returned; otherwise the result is filtered by
// whichever one is present, or unfiltered.
func (controller *ReviewsController) Get(c *gin.Context) {
	bookID, bookPresent, ok := parseQueryID(c, "book_id")
	if !ok {
		return
	}
	userID := c.Query("user_id")

	if bookPresent && userID != "" {
		review, err := controller.repo.Get(bookID, userID)
		if err != nil {
			respondRepositoryError(c, err, "review")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
		return
	}

	var list []entities.Review
	var err error
	switch {
	case bookPresent:
		list, err = controller.repo.ListByBook(bookID)
	case userID != "":
		list, err = controller.repo.ListByUser(userID)
	default:
		list, err = controller.repo.List()
	}
	if err != nil {
		respondRepositoryError(c, err, "review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "reviews": list})
}

type createReviewRequest struct {
	BookID      *uint   `json:"book_id"`
	UserID      string  `json:"user_id"`
	Rating      *int    `json:"rating"`
	ReviewDate  *string `json:"review_date"`
	Description *string `json:"description"`
}

// Create inserts a review, or overwrites the existing one for the same
// (book, user) pair.
func (controller *ReviewsController) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}
	if req.BookID == nil {
		respondBadRequest(c, "book_id is required")
		return
	}
	if req.UserID == "" {
		respondBadRequest(c, "user_id is required")
		return
	}
	if req.Rating == nil {
		respondBadRequest(c, "rating is required")
		return
	}

	reviewDate, ok := timestampOrNow(c, req.ReviewDate, "review_date")
	if !ok {
		return
	}

	review := &entities.Review{
		BookID:      *req.BookID,
		UserID:      req.UserID,
		Rating:      *req.Rating,
		ReviewDate:  reviewDate,
		Description: req.Description,
	}
	if err := controller.repo.Upsert(review); err != nil {
		if err == reviews.ErrInvalidRating {
			respondBadRequest(c, err.Error())
			return
		}
		respondRepositoryError(c, err, "review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review submitted successfully",
		"book_id": review.BookID,
		"user_id": review.UserID,
	})
}

type updateReviewRequest struct {
	BookID      *uint   `json:"book_id"`
	UserID      string  `json:"user_id"`
	Rating      *int    `json:"rating"`
	ReviewDate  *string `json:"review_date"`
	Description *string `json:"description"`
}

// Update applies a partial update to the review identified by the
// (book_id, user_id) pair carried in the request body.
func (controller *ReviewsController) Update(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}
	if req.BookID == nil {
		respondBadRequest(c, "book_id is required")
		return
	}
	if req.UserID == "" {
		respondBadRequest(c, "user_id is required")
		return
	}

	updates := map[string]any{}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.ReviewDate != nil {
		reviewDate, err := parseTimestamp(*req.ReviewDate)
		if err != nil {
			respondBadRequest(c, "review_date must use the format "+timestampLayout)
			return
		}
		updates["review_date"] = reviewDate
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(*req.BookID, req.UserID, updates); err != nil {
		if err == reviews.ErrInvalidRating {
			respondBadRequest(c, err.Error())
			return
		}
		respondRepositoryError(c, err, "review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review updated successfully",
		"book_id": *req.BookID,
		"user_id": req.UserID,
	})
}
