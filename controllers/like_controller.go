package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/models"
	"github.com/pulse-social/api-go/utils"
	"gorm.io/gorm"
)

type LikeController struct {
	DB *gorm.DB
}

func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{DB: db}
}

func (lc *LikeController) LikePost(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var input struct {
		PostID uint `json:"post_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field post_id is required"})
		return
	}

	var post models.Post
	if err := lc.DB.First(&post, input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	like := models.Like{
		PostID: post.ID,
		UserID: claims.UserID,
	}

	// The composite unique index on (user, post) rejects a second like, so
	// two concurrent requests cannot both land.
	if err := lc.DB.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Post already liked"})
			return
		}
		log.Println("Like post error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, like)
}

func (lc *LikeController) UnlikePost(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var like models.Like
	if err := lc.DB.First(&like, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Like not found"})
		return
	}

	// Only the user who liked may remove the like, mirroring comments.
	if like.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := lc.DB.Delete(&like).Error; err != nil {
		log.Println("Unlike post error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Like removed successfully", "id": like.ID})
}
