package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/database"
)

type HealthController struct {
	db *database.Database
}

func NewHealthController(db *database.Database) *HealthController {
	return &HealthController{db: db}
}

// Status reports API liveness and database connectivity. It always answers
// 200; a broken database shows up as "disconnected".
func (controller *HealthController) Status(c *gin.Context) {
	dbStatus := "connected"
	if controller.db == nil || controller.db.Ping() != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "Library Management System API is running",
		"database": dbStatus,
	})
}
