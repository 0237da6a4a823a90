package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pulse-social/api-go/models"
	"github.com/pulse-social/api-go/utils"
	"gorm.io/gorm"
)

type PostController struct {
	DB        *gorm.DB
	UploadDir string
}

func NewPostController(db *gorm.DB, uploadDir string) *PostController {
	return &PostController{DB: db, UploadDir: uploadDir}
}

// postWithLike decorates a post with the caller-specific liked flag.
type postWithLike struct {
	models.Post
	LikedByUser bool `json:"liked_by_user"`
}

func likedBy(likes []models.Like, userID uint) bool {
	for _, like := range likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

func (pc *PostController) CreatePost(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field content is required"})
		return
	}

	post := models.Post{
		Content:  content,
		AuthorID: claims.UserID,
	}

	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := utils.SaveUpload(c, file, pc.UploadDir)
		if err != nil {
			log.Println("Error saving post image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		post.ImageURL = imageURL
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		log.Println("Create post error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetAllPosts(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var posts []models.Post
	err := pc.DB.
		Preload("Author").
		Preload("Comments").
		Preload("Likes").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Println("Get all posts error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		out = append(out, gin.H{
			"id":        post.ID,
			"content":   post.Content,
			"author_id": post.AuthorID,
			"author": gin.H{
				"id":         post.Author.ID,
				"name":       post.Author.Name,
				"avatar_url": post.Author.AvatarURL,
			},
			"likes":         post.Likes,
			"comments":      post.Comments,
			"image_url":     post.ImageURL,
			"liked_by_user": likedBy(post.Likes, claims.UserID),
			"created_at":    post.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (pc *PostController) GetPostByID(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var post models.Post
	err := pc.DB.
		Preload("Comments.User").
		Preload("Likes").
		Preload("Author").
		First(&post, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, postWithLike{
		Post:        post,
		LikedByUser: likedBy(post.Likes, claims.UserID),
	})
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var post models.Post
	if err := pc.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	content := c.PostForm("content")
	if strings.TrimSpace(content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field content is required"})
		return
	}

	updates := map[string]interface{}{"content": content}

	// Image is replaced only when a new file arrives; otherwise it is kept.
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err := utils.SaveUpload(c, file, pc.UploadDir)
		if err != nil {
			log.Println("Error saving post image:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		updates["image_url"] = imageURL
	}

	if err := pc.DB.Model(&post).Updates(updates).Error; err != nil {
		log.Println("Update post error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	id := c.Param("id")
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not authorized"})
		return
	}

	var post models.Post
	if err := pc.DB.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorID != claims.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	// Comments, likes and the post go in one transaction; a failure partway
	// must leave all three untouched.
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Println("Delete post error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully", "id": post.ID})
}
