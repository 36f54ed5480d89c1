package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		container := setupTestContainer(t)

		w := doJSON(t, container, "POST", "/register", "", map[string]string{
			"username":   "steve",
			"password":   "Admin8*",
			"email":      "steve@example.com",
			"first_name": "Steve",
			"last_name":  "Brownlee",
			"address":    "100 Infinity Way",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var result map[string]string
		decodeBody(t, w, &result)
		assert.NotEmpty(t, result["token"])
		assert.Equal(t, "100 Infinity Way", result["address"])
	})

	t.Run("Duplicate username", func(t *testing.T) {
		container := setupTestContainer(t)
		registerUser(t, container, "steve")

		w := doJSON(t, container, "POST", "/register", "", map[string]string{
			"username":   "steve",
			"password":   "Admin8*",
			"first_name": "Steve",
			"last_name":  "Brownlee",
			"address":    "100 Infinity Way",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "username already exists")
	})

	t.Run("Missing fields", func(t *testing.T) {
		container := setupTestContainer(t)

		w := doJSON(t, container, "POST", "/register", "", map[string]string{"username": "steve"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password")
		assert.Contains(t, w.Body.String(), "address")
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Valid credentials return registration token", func(t *testing.T) {
		container := setupTestContainer(t)
		token := registerUser(t, container, "steve")

		w := doJSON(t, container, "POST", "/login", "", map[string]string{
			"username": "steve",
			"password": "Admin8*",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			Valid   bool   `json:"valid"`
			Token   string `json:"token"`
			Address string `json:"address"`
		}
		decodeBody(t, w, &result)
		assert.True(t, result.Valid)
		assert.Equal(t, token, result.Token)
		assert.Equal(t, "100 Main St", result.Address)
	})

	t.Run("Wrong password is 200 with valid false", func(t *testing.T) {
		container := setupTestContainer(t)
		registerUser(t, container, "steve")

		w := doJSON(t, container, "POST", "/login", "", map[string]string{
			"username": "steve",
			"password": "wrong",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result struct {
			Valid bool   `json:"valid"`
			Token string `json:"token"`
		}
		decodeBody(t, w, &result)
		assert.False(t, result.Valid)
		assert.Empty(t, result.Token)
	})
}
