package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/models"
	"github.com/pulse-social/api-go/utils"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var input struct {
		PostID  uint   `json:"post_id" binding:"required"`
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	var post models.Post
	if err := cc.DB.First(&post, input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	comment := models.Comment{
		Content: input.Content,
		PostID:  input.PostID,
		UserID:  claims.UserID,
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		log.Println("Error creating comment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var comment models.Comment
	if err := cc.DB.First(&comment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	// Only the author may delete their comment.
	if comment.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		log.Println("Error deleting comment:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully", "id": comment.ID})
}
