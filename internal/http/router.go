package http

import (
	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/auth"
	"github.com/openshelf/library-api/internal/database"
	"github.com/openshelf/library-api/internal/database/authors"
	"github.com/openshelf/library-api/internal/database/bookings"
	"github.com/openshelf/library-api/internal/database/books"
	"github.com/openshelf/library-api/internal/database/publishers"
	"github.com/openshelf/library-api/internal/database/reservations"
	"github.com/openshelf/library-api/internal/database/reviews"
	"github.com/openshelf/library-api/internal/database/transactions"
	"github.com/openshelf/library-api/internal/database/users"
)

// RouterConfig carries every dependency the router needs. A single struct
// keeps NewRouter's signature stable as dependencies grow.
type RouterConfig struct {
	Database     *database.Database
	AuthService  *auth.Service
	Users        *users.Repository
	Authors      *authors.Repository
	Publishers   *publishers.Repository
	Books        *books.Repository
	Bookings     *bookings.Repository
	Reservations *reservations.Repository
	Reviews      *reviews.Repository
	Transactions *transactions.Repository
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database)
	authController := NewAuthController(cfg.AuthService)
	usersController := NewUsersController(cfg.Users)
	authorsController := NewAuthorsController(cfg.Authors)
	publishersController := NewPublishersController(cfg.Publishers)
	booksController := NewBooksController(cfg.Books)
	bookingsController := NewBookingsController(cfg.Bookings)
	reservationsController := NewReservationsController(cfg.Reservations)
	reviewsController := NewReviewsController(cfg.Reviews)
	transactionsController := NewTransactionsController(cfg.Transactions)

	router.GET("/api/health", health.Status)

	router.POST("/api/signup", authController.Signup)
	router.POST("/api/login", authController.Login)
	router.POST("/api/change-password", authController.ChangePassword)

	router.GET("/api/users", usersController.Get)
	router.POST("/api/users", usersController.Create)
	router.PUT("/api/users/:id", usersController.Update)

	router.GET("/api/authors", authorsController.Get)
	router.POST("/api/authors", authorsController.Create)
	router.PUT("/api/authors/:id", authorsController.Update)

	router.GET("/api/publishers", publishersController.Get)
	router.POST("/api/publishers", publishersController.Create)
	router.PUT("/api/publishers/:id", publishersController.Update)

	router.GET("/api/books", booksController.Get)
	router.POST("/api/books", booksController.Create)
	router.PUT("/api/books/:id", booksController.Update)

	router.GET("/api/bookings", bookingsController.Get)
	router.POST("/api/bookings", bookingsController.Create)
	router.PUT("/api/bookings/:id", bookingsController.Update)

	router.GET("/api/reservations", reservationsController.Get)
	router.POST("/api/reservations", reservationsController.Create)
	router.PUT("/api/reservations/:id", reservationsController.Update)

	router.GET("/api/reviews", reviewsController.Get)
	router.POST("/api/reviews", reviewsController.Create)
	// The review key travels in the body, so no path parameter here.
	router.PUT("/api/reviews", reviewsController.Update)

	router.GET("/api/transactions", transactionsController.Get)
	router.POST("/api/transactions", transactionsController.Create)
	router.PUT("/api/transactions/:id", transactionsController.Update)

	return router
}
