package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkpress-dev/inkpress/db"
	"github.com/inkpress-dev/inkpress/internal/models"
	"github.com/inkpress-dev/inkpress/internal/utils"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	AuthorID uint   `json:"author_id"`
}

// CreateComment adds a comment under an existing post. The route is guarded
// by AuthMiddleware, so the caller is always a known user here.
func CreateComment(ctx *gin.Context) {
	postID, err := utils.GetPostID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateCommentRequest

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

	comment := models.Comment{
		UserID: userID,
		PostID: post.ID,
		Text:   req.Text,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment on post %d: %v", post.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Comment created successfully", "comment_id": comment.ID})
}

// listCommentsForPost returns a post's comments in creation order.
func listCommentsForPost(postID uint) ([]CommentResponse, error) {
	var comments []models.Comment

	if err := db.DB.Preload("User").Where("post_id = ?", postID).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, 0, len(comments))

	for _, comment := range comments {
		responses = append(responses, CommentResponse{
			ID:       comment.ID,
			Text:     comment.Text,
			Author:   comment.User.Name,
			AuthorID: comment.UserID,
		})
	}

	return responses, nil
}
