package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/transactions"
	"github.com/openshelf/library-api/internal/entities"
)

type TransactionsController struct {
	repo *transactions.Repository
}

func NewTransactionsController(repo *transactions.Repository) *TransactionsController {
	return &TransactionsController{repo: repo}
}

// Get lists history entries. Filter precedence: transaction_id, then
// user_id, then book_id, then everything.
func (controller *TransactionsController) Get(c *gin.Context) {
	transactionID, present, ok := parseQueryID(c, "transaction_id")
	if !ok {
		return
	}
	if present {
		transaction, err := controller.repo.GetByID(transactionID)
		if err != nil {
			respondRepositoryError(c, err, "transaction")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "transaction": transaction})
		return
	}

	var list []entities.Transaction
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
		respondRepositoryError(c, err, "transaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "transactions": list})
}

type createTransactionRequest struct {
	UserID          string  `json:"user_id"`
	BookID          *uint   `json:"book_id"`
	TransactionDate *string `json:"transaction_date"`
	Reserved        *bool   `json:"reserved"`
}

func (controller *TransactionsController) Create(c *gin.Context) {
	var req createTransactionRequest
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
	if req.Reserved == nil {
		respondBadRequest(c, "reserved is required")
		return
	}

	transactionDate, ok := timestampOrNow(c, req.TransactionDate, "transaction_date")
	if !ok {
		return
	}

	transaction := &entities.Transaction{
		UserID:          req.UserID,
		BookID:          *req.BookID,
		TransactionDate: transactionDate,
		Reserved:        *req.Reserved,
	}
	if err := controller.repo.Create(transaction); err != nil {
		respondRepositoryError(c, err, "transaction")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        "Transaction recorded successfully",
		"transaction_id": transaction.TransactionID,
	})
}

type updateTransactionRequest struct {
	UserID          *string `json:"user_id"`
	BookID          *uint   `json:"book_id"`
	TransactionDate *string `json:"transaction_date"`
	Reserved        *bool   `json:"reserved"`
}

// Update applies a partial update over the allow-listed transaction fields.
func (controller *TransactionsController) Update(c *gin.Context) {
	transactionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateTransactionRequest
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
	if req.TransactionDate != nil {
		transactionDate, err := parseTimestamp(*req.TransactionDate)
		if err != nil {
			respondBadRequest(c, "transaction_date must use the format "+timestampLayout)
			return
		}
		updates["transaction_date"] = transactionDate
	}
	if req.Reserved != nil {
		updates["reserved"] = *req.Reserved
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(transactionID, updates); err != nil {
		respondRepositoryError(c, err, "transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Transaction updated successfully",
		"transaction_id": transactionID,
	})
}
