package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planet-cred-api/storage"
	"planet-cred-api/utils"
)

// maxVideoSize caps video evidence at 300MB, roughly five minutes of good
// quality footage.
const maxVideoSize = 300 * 1024 * 1024

// UploadVideo accepts a multipart video file, stores it under the caller's
// prefix and returns the public URL to pass to CreateSubmission.
func UploadVideo(c *gin.Context) {
	userID, _ := c.Get("userID")

	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No video uploaded"})
		return
	}

	if file.Size > maxVideoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video must be under 300MB (approximately 5 minutes)"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !utils.IsVideoContentType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a video file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("mission-videos/%d/%s%s", userID.(int), uuid.NewString(), ext)

	store := storage.NewLocalStoreFromEnv()
	videoURL, err := store.Put(c.Request.Context(), key, contentType, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store video"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"video_url": videoURL,
	})
}
