package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPostID parses the :id route parameter used by the post and comment
// endpoints.
func GetPostID(ctx *gin.Context) (uint, error) {
	postIDStr := ctx.Param("id")

	if postIDStr == "" {
		return 0, errors.New("post ID not found")
	}

	postID, err := strconv.ParseUint(postIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("invalid post ID")
	}

	return uint(postID), nil
}
