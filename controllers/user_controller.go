package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/models"
	"github.com/pulse-social/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB        *gorm.DB
	Tokens    *utils.TokenService
	UploadDir string
}

func NewUserController(db *gorm.DB, tokens *utils.TokenService, uploadDir string) *UserController {
	return &UserController{DB: db, Tokens: tokens, UploadDir: uploadDir}
}

func (uc *UserController) Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	var existing models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	avatarURL, err := utils.GenerateAvatar(input.Name, uc.UploadDir)
	if err != nil {
		log.Println("Error generating avatar:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Email:     input.Email,
		Password:  string(hashedPassword),
		Name:      input.Name,
		AvatarURL: avatarURL,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		log.Println("Error in register:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Password is never serialized; the model redacts it.
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := uc.Tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (uc *UserController) Current(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var user models.User
	err := uc.DB.
		Preload("Followers.Follower").
		Preload("Following.Following").
		First(&user, claims.UserID).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var user models.User
	err := uc.DB.
		Preload("Followers").
		Preload("Following").
		First(&user, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var edge models.Follow
	isFollowing := uc.DB.
		Where("follower_id = ? AND following_id = ?", claims.UserID, user.ID).
		First(&edge).Error == nil

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"is_following": isFollowing,
	})
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if uint(id) != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Partial update: only fields present in the form are touched.
	updates := map[string]interface{}{}

	if email := c.PostForm("email"); email != "" {
		var existing models.User
		if err := uc.DB.Where("email = ?", email).First(&existing).Error; err == nil && existing.ID != user.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already in use"})
			return
		}
		updates["email"] = email
	}
	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
	}
	if bio := c.PostForm("bio"); bio != "" {
		updates["bio"] = bio
	}
	if location := c.PostForm("location"); location != "" {
		updates["location"] = location
	}
	if dateOfBirth := c.PostForm("date_of_birth"); dateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", dateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field date_of_birth must be formatted as YYYY-MM-DD"})
			return
		}
		updates["date_of_birth"] = parsed
	}

	if file, err := c.FormFile("avatar"); err == nil {
		avatarURL, err := utils.SaveUpload(c, file, uc.UploadDir)
		if err != nil {
			log.Println("Error saving avatar:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		updates["avatar_url"] = avatarURL
	}

	if len(updates) > 0 {
		if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already in use"})
				return
			}
			log.Println("Update user error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, user)
}
