package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"

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
)

// setupTestRouter builds the full router over a throwaway sqlite database so
// handler tests exercise the same wiring as the real server.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.New(sqlite.Open(dbPath))
	require.NoError(t, err)

	usersRepo := users.NewRepository(db.DB)
	router := NewRouter(RouterConfig{
		Database:     db,
		AuthService:  auth.NewService(usersRepo, config.Auth{BcryptCost: bcrypt.MinCost}),
		Users:        usersRepo,
		Authors:      authors.NewRepository(db.DB),
		Publishers:   publishers.NewRepository(db.DB),
		Books:        books.NewRepository(db.DB),
		Bookings:     bookings.NewRepository(db.DB),
		Reservations: reservations.NewRepository(db.DB),
		Reviews:      reviews.NewRepository(db.DB),
		Transactions: transactions.NewRepository(db.DB),
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
