package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/controllers"
	"github.com/pulse-social/api-go/utils"
	"github.com/stretchr/testify/assert"
)

// Every handler refuses to run without a resolved identity, even when mounted
// without the auth middleware in front of it.
func TestHandlersRequireIdentity(t *testing.T) {
	_, db := newTestServer(t)

	uploadDir := t.TempDir()
	userController := controllers.NewUserController(db, utils.NewTokenService(testSecret, time.Hour), uploadDir)
	postController := controllers.NewPostController(db, uploadDir)
	commentController := controllers.NewCommentController(db)
	likeController := controllers.NewLikeController(db)
	followController := controllers.NewFollowController(db)

	r := gin.New()
	r.GET("/users/:id", userController.GetUserByID)
	r.GET("/posts", postController.GetAllPosts)
	r.GET("/posts/:id", postController.GetPostByID)
	r.PUT("/posts/:id", postController.UpdatePost)
	r.DELETE("/posts/:id", postController.DeletePost)
	r.DELETE("/comments/:id", commentController.DeleteComment)
	r.DELETE("/likes/:id", likeController.UnlikePost)
	r.DELETE("/unfollow/:id", followController.UnfollowUser)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/users/1"},
		{http.MethodGet, "/posts"},
		{http.MethodGet, "/posts/1"},
		{http.MethodPut, "/posts/1"},
		{http.MethodDelete, "/posts/1"},
		{http.MethodDelete, "/comments/1"},
		{http.MethodDelete, "/likes/1"},
		{http.MethodDelete, "/unfollow/1"},
	} {
		w := performJSON(r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
