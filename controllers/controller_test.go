package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gigtax/auth"
	"gigtax/database"
	"gigtax/repositories"
	"gigtax/services"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestContainer wires the whole stack against a fresh in-memory database.
func setupTestContainer(t *testing.T) *restful.Container {
	t.Helper()

	dsn := fmt.Sprintf("file:controllertest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))
	database.SeedCategories(db)

	userRepo := repositories.NewUserRepository(db)
	musicianRepo := repositories.NewMusicianRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	tourRepo := repositories.NewTourRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	authService := services.NewAuthService(userRepo, musicianRepo, tokenRepo)

	return NewContainer(Controllers{
		Auth:     NewAuthController(authService),
		Gig:      NewGigController(services.NewGigService(gigRepo)),
		Tour:     NewTourController(services.NewTourService(tourRepo)),
		Receipt:  NewReceiptController(services.NewReceiptService(receiptRepo, categoryRepo)),
		Musician: NewMusicianController(services.NewMusicianService(musicianRepo)),
		Category: NewCategoryController(services.NewCategoryService(categoryRepo)),
	}, auth.TokenFilter(authService))
}

// doJSON performs a request against the container, optionally with a body
// and a bearer token, and returns the recorded response.
func doJSON(t *testing.T, container *restful.Container, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", restful.MIME_JSON)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	container.ServeHTTP(w, req)
	return w
}

// registerUser registers an account over HTTP and returns its token.
func registerUser(t *testing.T, container *restful.Container, username string) string {
	t.Helper()

	w := doJSON(t, container, "POST", "/register", "", map[string]string{
		"username":   username,
		"password":   "Admin8*",
		"email":      username + "@example.com",
		"first_name": "Test",
		"last_name":  "Musician",
		"address":    "100 Main St",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var result map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.NotEmpty(t, result["token"])
	return result["token"]
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
