package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/config"
	"github.com/pulse-social/api-go/controllers"
	"github.com/pulse-social/api-go/middleware"
	"github.com/pulse-social/api-go/utils"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize controllers
	userController := controllers.NewUserController(db, tokens, cfg.UploadDir)
	postController := controllers.NewPostController(db, cfg.UploadDir)
	commentController := controllers.NewCommentController(db)
	likeController := controllers.NewLikeController(db)
	followController := controllers.NewFollowController(db)

	// Stored files are served straight from the uploads directory.
	r.Static("/uploads", cfg.UploadDir)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", userController.Register)
		public.POST("/login", userController.Login)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		// User routes
		protected.GET("/current", userController.Current)
		protected.GET("/users/:id", userController.GetUserByID)
		protected.PUT("/users/:id", userController.UpdateUser)

		// Post routes
		protected.POST("/posts", postController.CreatePost)
		protected.GET("/posts", postController.GetAllPosts)
		protected.GET("/posts/:id", postController.GetPostByID)
		protected.PUT("/posts/:id", postController.UpdatePost)
		protected.DELETE("/posts/:id", postController.DeletePost)

		// Comment routes
		protected.POST("/comments", commentController.CreateComment)
		protected.DELETE("/comments/:id", commentController.DeleteComment)

		// Like routes
		protected.POST("/likes", likeController.LikePost)
		protected.DELETE("/likes/:id", likeController.UnlikePost)

		// Follow routes
		protected.POST("/follow", followController.FollowUser)
		protected.DELETE("/unfollow/:id", followController.UnfollowUser)
	}
}
