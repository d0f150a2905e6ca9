package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/publishers"
	"github.com/openshelf/library-api/internal/entities"
)

type PublishersController struct {
	repo *publishers.Repository
}

func NewPublishersController(repo *publishers.Repository) *PublishersController {
	return &PublishersController{repo: repo}
}

// Get returns all publishers, or a single one when ?publisher_id= is given.
func (controller *PublishersController) Get(c *gin.Context) {
	publisherID, present, ok := parseQueryID(c, "publisher_id")
	if !ok {
		return
	}
	if present {
		publisher, err := controller.repo.GetByID(publisherID)
		if err != nil {
			respondRepositoryError(c, err, "publisher")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "publisher": publisher})
		return
	}

	list, err := controller.repo.List()
	if err != nil {
		respondRepositoryError(c, err, "publisher")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "publishers": list})
}

type publisherRequest struct {
	PublisherName string `json:"publisher_name"`
}

func (controller *PublishersController) Create(c *gin.Context) {
	var req publisherRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PublisherName == "" {
		respondBadRequest(c, "publisher_name is required")
		return
	}

	publisher := &entities.Publisher{PublisherName: req.PublisherName}
	if err := controller.repo.Create(publisher); err != nil {
		respondRepositoryError(c, err, "publisher")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Publisher created successfully",
		"publisher_id": publisher.PublisherID,
	})
}

// Update replaces the publisher name, the only mutable field.
func (controller *PublishersController) Update(c *gin.Context) {
	publisherID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req publisherRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PublisherName == "" {
		respondBadRequest(c, "publisher_name is required")
		return
	}

	if err := controller.repo.Update(publisherID, map[string]any{"publisher_name": req.PublisherName}); err != nil {
		respondRepositoryError(c, err, "publisher")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Publisher updated successfully",
		"publisher_id": publisherID,
	})
}
