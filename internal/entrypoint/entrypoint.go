package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/library-api/internal/auth"
	"github.com/openshelf/library-api/internal/config"
	"github.com/openshelf/library-api/internal/database"
	"github.com/openshelf/library-api/internal/database/authors"
	"github.com/openshelf/library-api/internal/database/bookings"
	"github.com/openshelf/library-api/internal/database/books"
	"github.com/openshelf/library-api/internal/database/publishers"
	"github.com/openshelf/library-api/internal/database/reservations"
	"github.com/openshelf/library-api/internal/database/reviews"
	"github.com/openshelf/library-api/internal/database/transactions"
	"github.com/openshelf/library-api/internal/database/users"
	http_controllers "github.com/openshelf/library-api/internal/http"
)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// gracefully within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config) {
	if cfg.Database.StartupDelay > 0 {
		log.Printf("Waiting %s before connecting to the database", cfg.Database.StartupDelay)
		time.Sleep(cfg.Database.StartupDelay)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	usersRepo := users.NewRepository(db.DB)
	authService := auth.NewService(usersRepo, cfg.Auth)

	routerCfg := http_controllers.RouterConfig{
		Database:     db,
		AuthService:  authService,
		Users:        usersRepo,
		Authors:      authors.NewRepository(db.DB),
		Publishers:   publishers.NewRepository(db.DB),
		Books:        books.NewRepository(db.DB),
		Bookings:     bookings.NewRepository(db.DB),
		Reservations: reservations.NewRepository(db.DB),
		Reviews:      reviews.NewRepository(db.DB),
		Transactions: transactions.NewRepository(db.DB),
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
