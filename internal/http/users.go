package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database/users"
	"github.com/openshelf/library-api/internal/entities"
)

// UsersController handles direct CRUD over user rows. Unlike signup, the
// create endpoint takes a pre-resolved user id and password hash.
type UsersController struct {
	repo *users.Repository
}

func NewUsersController(repo *users.Repository) *UsersController {
	return &UsersController{repo: repo}
}

// Get returns all users, or a single user when ?user_id= is given.
func (controller *UsersController) Get(c *gin.Context) {
	if userID := c.Query("user_id"); userID != "" {
		user, err := controller.repo.GetByID(userID)
		if err != nil {
			respondRepositoryError(c, err, "user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
		return
	}

	list, err := controller.repo.List()
	if err != nil {
		respondRepositoryError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(list), "users": list})
}

type createUserRequest struct {
	UserID       string  `json:"user_id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash"`
	Admin        *bool   `json:"admin"`
	CreationTime *string `json:"creation_time"`
}

// Create inserts a user row with a caller-supplied id and hash.
func (controller *UsersController) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}
	for _, check := range []struct {
		field string
		value string
	}{
		{"user_id", req.UserID},
		{"username", req.Username},
		{"email", req.Email},
		{"password_hash", req.PasswordHash},
	} {
		if check.value == "" {
			respondBadRequest(c, check.field+" is required")
			return
		}
	}

	taken, err := controller.repo.ExistsByID(req.UserID)
	if err != nil {
		respondRepositoryError(c, err, "user")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "user_id already exists")
		return
	}

	creationTime, ok := timestampOrNow(c, req.CreationTime, "creation_time")
	if !ok {
		return
	}

	user := &entities.User{
		UserID:       req.UserID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		CreationTime: creationTime,
	}
	if req.Admin != nil {
		user.Admin = *req.Admin
	}

	if err := controller.repo.Create(user); err != nil {
		respondRepositoryError(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user_id": user.UserID,
	})
}

type updateUserRequest struct {
	Username     *string `json:"username"`
	Email        *string `json:"email"`
	PasswordHash *string `json:"password_hash"`
	Admin        *bool   `json:"admin"`
}

// Update applies a partial update over the allow-listed user fields.
func (controller *UsersController) Update(c *gin.Context) {
	userID := c.Param("id")

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "no data provided")
		return
	}

	updates := map[string]any{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PasswordHash != nil {
		updates["password_hash"] = *req.PasswordHash
	}
	if req.Admin != nil {
		updates["admin"] = *req.Admin
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no valid fields to update")
		return
	}

	if err := controller.repo.Update(userID, updates); err != nil {
		respondRepositoryError(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User updated successfully",
		"user_id": userID,
	})
}
