package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scrollit/pkg/auth"
	"scrollit/pkg/mediahost"
	"scrollit/pkg/upload"
)

// UploadMedia streams a multipart video file to the media host and returns
// the durable URL. The file bytes are never inspected here.
func (h *Handler) UploadMedia(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file not found in form data"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if err := upload.ValidateFile(contentType, file.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer src.Close()

	res, err := h.host.Upload(c.Request.Context(), src, mediahost.UploadInput{
		Name:        file.Filename,
		ContentType: contentType,
		Size:        file.Size,
	})
	if err != nil {
		h.log.Error("media upload", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upload.Categorize(err).Error()})
		return
	}

	h.log.Info("media uploaded",
		zap.Uint("userID", userID),
		zap.String("name", file.Filename),
		zap.Int64("size", file.Size),
	)
	c.JSON(http.StatusCreated, gin.H{"url": res.URL, "thumbnailUrl": res.ThumbnailURL})
}
