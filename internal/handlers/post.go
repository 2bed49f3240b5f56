package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkpress-dev/inkpress/db"
	"github.com/inkpress-dev/inkpress/internal/models"
	"github.com/inkpress-dev/inkpress/internal/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// dateLayout is the human-readable publication date stamped on a post at
// creation time, e.g. "April 05, 2024". It never changes on edit.
const dateLayout = "January 02, 2006"

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	Body     string `json:"body" binding:"required"`
	ImgURL   string `json:"img_url" binding:"required"`
}

type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle" binding:"required"`
	Body     string `json:"body" binding:"required"`
	ImgURL   string `json:"img_url" binding:"required"`
}

type PostSummary struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	ImgURL   string `json:"img_url"`
	Author   string `json:"author"`
	AuthorID uint   `json:"author_id"`
}

type PostResponse struct {
	ID       uint              `json:"id"`
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Date     string            `json:"date"`
	Body     string            `json:"body"`
	ImgURL   string            `json:"img_url"`
	Author   string            `json:"author"`
	AuthorID uint              `json:"author_id"`
	Comments []CommentResponse `json:"comments"`
}

func ListPosts(ctx *gin.Context) {
	var posts []models.Post

	if err := db.DB.Preload("User").Order("id ASC").Find(&posts).Error; err != nil {
		log.Printf("Failed to list posts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	summaries := make([]PostSummary, 0, len(posts))

	for _, post := range posts {
		summaries = append(summaries, PostSummary{
			ID:       post.ID,
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Date:     post.Date,
			ImgURL:   post.ImgURL,
			Author:   post.User.Name,
			AuthorID: post.UserID,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"posts": summaries})
}

func GetPost(ctx *gin.Context) {
	postID, err := utils.GetPostID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post

	if err := db.DB.Preload("User").Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			log.Printf("Failed to fetch post %d: %v", postID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	comments, err := listCommentsForPost(post.ID)

	if err != nil {
		log.Printf("Failed to list comments for post %d: %v", post.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": PostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		Body:     post.Body,
		ImgURL:   post.ImgURL,
		Author:   post.User.Name,
		AuthorID: post.UserID,
		Comments: comments,
	}})
}

func CreatePost(ctx *gin.Context) {
	var req CreatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
		return
	}

	var existingPost models.Post

	err = db.DB.Where("title = ?", req.Title).First(&existingPost).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A post with this title already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking post title: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	post := models.Post{
		UserID:   userID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     time.Now().Format(dateLayout),
		Body:     req.Body,
		ImgURL:   req.ImgURL,
	}

	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("Failed to create post: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post_id": post.ID})
}

func UpdatePost(ctx *gin.Context) {
	postID, err := utils.GetPostID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdatePostRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var post models.Post

	if err := db.DB.Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	var conflicting models.Post

	err = db.DB.Where("title = ? AND id != ?", req.Title, post.ID).First(&conflicting).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A post with this title already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking post title: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Date is deliberately left untouched: the publication date is fixed
	// at creation.
	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.Body = req.Body
	post.ImgURL = req.ImgURL

	if err := db.DB.Save(&post).Error; err != nil {
		log.Printf("Failed to update post %d: %v", post.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": PostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Subtitle: post.Subtitle,
		Date:     post.Date,
		Body:     post.Body,
		ImgURL:   post.ImgURL,
		AuthorID: post.UserID,
	}})
}

func DeletePost(ctx *gin.Context) {
	postID, err := utils.GetPostID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.Post

	if err := db.DB.Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		}
		return
	}

	// Comments go with their post, in the same transaction.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})

	if err != nil {
		log.Printf("Failed to delete post %d: %v", post.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
