package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gigPayload() map[string]interface{} {
	return map[string]interface{}{
		"artist":          "Reyna Roberts",
		"locationName":    "The Barnyard",
		"locationAddress": "Sharpsburg, KY",
		"gigDescription":  "Country Show",
		"date":            "2021-07-08",
		"gigPay":          200,
		"mileage":         10,
	}
}

func TestGigCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		container := setupTestContainer(t)
		token := registerUser(t, container, "steve")

		w := doJSON(t, container, "POST", "/gigs", token, gigPayload())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var gig GigResponse
		decodeBody(t, w, &gig)
		assert.NotZero(t, gig.ID)
		assert.Equal(t, "Reyna Roberts", gig.Artist)
		assert.Equal(t, "The Barnyard", gig.LocationName)
		assert.Equal(t, "Sharpsburg, KY", gig.LocationAddress)
		assert.Equal(t, "Country Show", gig.GigDescription)
		assert.Equal(t, "2021-07-08", gig.Date)
		assert.Equal(t, 200.0, gig.GigPay)
		assert.Equal(t, 10, gig.Mileage)
		assert.Equal(t, "steve", gig.Musician.User.Username)
	})

	t.Run("Validation failure", func(t *testing.T) {
		container := setupTestContainer(t)
		token := registerUser(t, container, "steve")

		payload := gigPayload()
		payload["artist"] = ""
		delete(payload, "gigPay")

		w := doJSON(t, container, "POST", "/gigs", token, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "reason")
		assert.Contains(t, w.Body.String(), "artist")
		assert.Contains(t, w.Body.String(), "gigPay")
	})

	t.Run("Missing token", func(t *testing.T) {
		container := setupTestContainer(t)

		w := doJSON(t, container, "POST", "/gigs", "", gigPayload())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGigRetrieve(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		container := setupTestContainer(t)
		token := registerUser(t, container, "steve")

		w := doJSON(t, container, "POST", "/gigs", token, gigPayload())
		require.Equal(t, http.StatusCreated, w.Code)
		var created GigResponse
		decodeBody(t, w, &created)

		w = doJSON(t, container, "GET", fmt.Sprintf("/gigs/%d", created.ID), token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched GigResponse
		decodeBody(t, w, &fetched)
		assert.Equal(t, created, fetched)
	})

	t.Run("Foreign gig reads as not found", func(t *testing.T) {
		container := setupTestContainer(t)
		ownerToken := registerUser(t, container, "owner")
		otherToken := registerUser(t, container, "other")

		w := doJSON(t, container, "POST", "/gigs", ownerToken, gigPayload())
		require.Equal(t, http.StatusCreated, w.Code)
		var created GigResponse
		decodeBody(t, w, &created)

		w = doJSON(t, container, "GET", fmt.Sprintf("/gigs/%d", created.ID), otherToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "message")
	})
}

func TestGigList(t *testing.T) {
	container := setupTestContainer(t)
	ownerToken := registerUser(t, container, "owner")
	otherToken := registerUser(t, container, "other")

	w := doJSON(t, container, "POST", "/gigs", ownerToken, gigPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, container, "GET", "/gigs", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ownerGigs []GigResponse
	decodeBody(t, w, &ownerGigs)
	assert.Len(t, ownerGigs, 1)

	// The other musician must not see the owner's gig
	w = doJSON(t, container, "GET", "/gigs", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var otherGigs []GigResponse
	decodeBody(t, w, &otherGigs)
	assert.Empty(t, otherGigs)
}

func TestGigUpdateAndDelete(t *testing.T) {
	container := setupTestContainer(t)
	token := registerUser(t, container, "steve")

	w := doJSON(t, container, "POST", "/gigs", token, gigPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created GigResponse
	decodeBody(t, w, &created)
	path := fmt.Sprintf("/gigs/%d", created.ID)

	payload := gigPayload()
	payload["artist"] = "Jason Isbell"
	payload["gigPay"] = 450.5

	w = doJSON(t, container, "PUT", path, token, payload)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = doJSON(t, container, "GET", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var updated GigResponse
	decodeBody(t, w, &updated)
	assert.Equal(t, "Jason Isbell", updated.Artist)
	assert.Equal(t, 450.5, updated.GigPay)

	w = doJSON(t, container, "DELETE", path, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, container, "GET", path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, container, "DELETE", path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
