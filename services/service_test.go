package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gigtax/auth"
	"gigtax/database"
	"gigtax/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database, migrated and seeded.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, database.Migrate(db))
	database.SeedCategories(db)
	return db
}

func newAuthService(db *gorm.DB) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewMusicianRepository(db),
		repositories.NewTokenRepository(db),
	)
}

// registerMusician registers a throwaway account and resolves its identity.
func registerMusician(t *testing.T, db *gorm.DB, username string) (auth.Identity, string) {
	t.Helper()

	svc := newAuthService(db)
	result, err := svc.Register(&RegisterInput{
		Username:  username,
		Password:  "Admin8*",
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "Musician",
		Address:   "100 Main St",
	})
	require.NoError(t, err)

	identity, err := svc.Authenticate(result.Token)
	require.NoError(t, err)
	return *identity, result.Token
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func uptr(v uint) *uint       { return &v }
