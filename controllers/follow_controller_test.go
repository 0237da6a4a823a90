package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowInvariants(t *testing.T) {
	r, db := newTestServer(t)
	aliceID, aliceToken := registerAndLogin(t, r, "alice@example.com", "alice", "secret123")
	bobID, _ := registerAndLogin(t, r, "bob@example.com", "bob", "secret123")

	w := performJSON(r, http.MethodPost, "/api/follow", aliceToken, gin.H{"following_id": aliceID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(r, http.MethodPost, "/api/follow", aliceToken, gin.H{"following_id": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(r, http.MethodPost, "/api/follow", aliceToken, gin.H{"following_id": bobID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(r, http.MethodPost, "/api/follow", aliceToken, gin.H{"following_id": bobID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", aliceID, bobID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUnfollow(t *testing.T) {
	r, _ := newTestServer(t)
	_, aliceToken := registerAndLogin(t, r, "alice@example.com", "alice", "secret123")
	bobID, _ := registerAndLogin(t, r, "bob@example.com", "bob", "secret123")

	path := "/api/unfollow/" + strconv.Itoa(int(bobID))

	// No edge yet.
	w := performJSON(r, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(r, http.MethodPost, "/api/follow", aliceToken, gin.H{"following_id": bobID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(r, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodDelete, path, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
