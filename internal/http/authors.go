package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/authors"
	"github.com/openshelf/library-api/internal/entities"
)

type AuthorsController struct {
	repo *authors.Repository
}

func NewAuthorsController(repo *authors.Repository) *AuthorsController {
	return &AuthorsController{repo: repo}
}

// Get returns all authors, or a single author when ?author_id= is given.
func (controller *AuthorsController) Get(c *gin.Context) {
	authorID, present, ok := parseQueryID(c, "author_id")
	if !ok {
		return
	}
	if present {
		author, err := controller.repo.GetByID(authorID)
		if err != nil {
			respondRepositoryError(c, err, "author")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "author": author})
		return
	}

	list, err := controller.repo.List()
	if err != nil {
		respondRepositoryError(c, err, "author")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "authors": list})
}

type createAuthorRequest struct {
	AuthorName string  `json:"author_name"`
	AuthorBio  *string `json:"author_bio"`
}

func (controller *AuthorsController) Create(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AuthorName == "" {
		respondBadRequest(c, "author_name is required")
		return
	}

	author := &entities.Author{AuthorName: req.AuthorName, AuthorBio: req.AuthorBio}
	if err := controller.repo.Create(author); err != nil {
		respondRepositoryError(c, err, "author")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Author created successfully",
		"author_id": author.AuthorID,
	})
}

type updateAuthorRequest struct {
	AuthorName *string `json:"author_name"`
	AuthorBio  *string `json:"author_bio"`
}

func (controller *AuthorsController) Update(c *gin.Context) {
	authorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}

	updates := map[string]any{}
	if req.AuthorName != nil {
		updates["author_name"] = *req.AuthorName
	}
	if req.AuthorBio != nil {
		updates["author_bio"] = *req.AuthorBio
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(authorID, updates); err != nil {
		respondRepositoryError(c, err, "author")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Author updated successfully",
		"author_id": authorID,
	})
}
