package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/books"
	"github.com/openshelf/library-api/internal/entities"
)

type BooksController struct {
	repo *books.Repository
}

func NewBooksController(repo *books.Repository) *BooksController {
	return &BooksController{repo: repo}
}

// Get returns all books, or a single book when ?book_id= is given.
func (controller *BooksController) Get(c *gin.Context) {
	bookID, present, ok := parseQueryID(c, "book_id")
	if !ok {
		return
	}
	if present {
		book, err := controller.repo.GetByID(bookID)
		if err != nil {
			respondRepositoryError(c, err, "book")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "book": book})
		return
	}

	list, err := controller.repo.List()
	if err != nil {
		respondRepositoryError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "books": list})
}

type createBookRequest struct {
	Name            string  `json:"name"`
	AuthorName      string  `json:"author_name"`
	Category        string  `json:"category"`
	Genre           string  `json:"genre"`
	PublisherName   *string `json:"publisher_name"`
	PublishDate     string  `json:"publish_date"`
	Language        string  `json:"language"`
	PageCount       *int    `json:"page_count"`
	CopiesAvailable *int    `json:"copies_available"`
	ImageLink       *string `json:"image_link"`
	RatedType       string  `json:"rated_type"`
	Description     *string `json:"description"`
}

// Create inserts a book. The author is resolved by name and created when
// absent; same for the optional publisher.
func (controller *BooksController) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}
	for _, check := range []struct {
		field   string
		missing bool
	}{
		{"name", req.Name == ""},
		{"author_name", req.AuthorName == ""},
		{"category", req.Category == ""},
		{"genre", req.Genre == ""},
		{"publish_date", req.PublishDate == ""},
		{"language", req.Language == ""},
		{"page_count", req.PageCount == nil},
		{"copies_available", req.CopiesAvailable == nil},
		{"rated_type", req.RatedType == ""},
	} {
		if check.missing {
			respondBadRequest(c, check.field+" is required")
			return
		}
	}

	publishDate, err := parseDate(req.PublishDate)
	if err != nil {
		respondBadRequest(c, "publish_date must use the format "+dateLayout)
		return
	}

	book := &entities.Book{
		Name:            req.Name,
		Category:        req.Category,
		Genre:           req.Genre,
		PublishDate:     publishDate,
		Language:        req.Language,
		PageCount:       *req.PageCount,
		CopiesAvailable: *req.CopiesAvailable,
		ImageLink:       req.ImageLink,
		RatedType:       req.RatedType,
		Description:     req.Description,
	}

	if err := controller.repo.Create(book, req.AuthorName, req.PublisherName); err != nil {
		respondRepositoryError(c, err, "book")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Book created successfully",
		"book_id": book.BookID,
	})
}

type updateBookRequest struct {
	Name            *string `json:"name"`
	AuthorID        *uint   `json:"author_id"`
	Category        *string `json:"category"`
	Genre           *string `json:"genre"`
	PublisherID     *uint   `json:"publisher_id"`
	PublishDate     *string `json:"publish_date"`
	Language        *string `json:"language"`
	PageCount       *int    `json:"page_count"`
	CopiesAvailable *int    `json:"copies_available"`
	ImageLink       *string `json:"image_link"`
	RatedType       *string `json:"rated_type"`
	Description     *string `json:"description"`
}

// Update applies a partial update over the allow-listed book fields.
func (controller *BooksController) Update(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.AuthorID != nil {
		updates["author_id"] = *req.AuthorID
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Genre != nil {
		updates["genre"] = *req.Genre
	}
	if req.PublisherID != nil {
		updates["publisher_id"] = *req.PublisherID
	}
	if req.PublishDate != nil {
		publishDate, err := parseDate(*req.PublishDate)
		if err != nil {
			respondBadRequest(c, "publish_date must use the format "+dateLayout)
			return
		}
		updates["publish_date"] = publishDate
	}
	if req.Language != nil {
		updates["language"] = *req.Language
	}
	if req.PageCount != nil {
		updates["page_count"] = *req.PageCount
	}
	if req.CopiesAvailable != nil {
		updates["copies_available"] = *req.CopiesAvailable
	}
	if req.ImageLink != nil {
		updates["image_link"] = *req.ImageLink
	}
	if req.RatedType != nil {
		updates["rated_type"] = *req.RatedType
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(bookID, updates); err != nil {
		respondRepositoryError(c, err, "book")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Book updated successfully",
		"book_id": bookID,
	})
}
