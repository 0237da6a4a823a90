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

type FollowController struct {
	DB *gorm.DB
}

func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{DB: db}
}

func (fc *FollowController) FollowUser(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var input struct {
		FollowingID uint `json:"following_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field following_id is required"})
		return
	}

	if input.FollowingID == claims.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot follow yourself"})
		return
	}

	var target models.User
	if err := fc.DB.First(&target, input.FollowingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	follow := models.Follow{
		FollowerID:  claims.UserID,
		FollowingID: target.ID,
	}

	if err := fc.DB.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already following this user"})
			return
		}
		log.Println("Follow error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Successfully followed user"})
}

func (fc *FollowController) UnfollowUser(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var follow models.Follow
	err := fc.DB.
		Where("follower_id = ? AND following_id = ?", claims.UserID, id).
		First(&follow).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You are not following this user"})
		return
	}

	if err := fc.DB.Delete(&follow).Error; err != nil {
		log.Println("Unfollow error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully unfollowed user"})
}
