package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scrollit/pkg/auth"
	"scrollit/pkg/models"
)

const maxDescriptionLen = 2200

type createVideoRequest struct {
	Title        string            `json:"title"`
	VideoURL     string            `json:"videoUrl"`
	Description  string            `json:"description"`
	ThumbnailURL string            `json:"thumbnailUrl"`
	Transform    *models.Transform `json:"transform"`
}

func (h *Handler) CreateVideo(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Title == "" || req.VideoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and videoUrl are required"})
		return
	}
	description := strings.TrimSpace(req.Description)
	if len(description) > maxDescriptionLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description must be 2200 characters or fewer"})
		return
	}

	thumbnail := req.ThumbnailURL
	if thumbnail == "" {
		thumbnail = req.VideoURL
	}
	transform := models.Transform{Width: 1920, Height: 1080, Quality: 100}
	if req.Transform != nil && req.Transform.Quality > 0 {
		transform.Quality = req.Transform.Quality
	}

	video := models.Video{
		UserID:       userID,
		VideoURL:     req.VideoURL,
		Title:        req.Title,
		Description:  description,
		ThumbnailURL: thumbnail,
		Transform:    transform,
	}
	if err := h.db.Create(&video).Error; err != nil {
		h.log.Error("create video", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error while uploading the video"})
		return
	}

	h.log.Info("video created",
		zap.Uint("videoID", video.ID),
		zap.Uint("userID", userID),
	)
	c.JSON(http.StatusCreated, gin.H{"success": true, "video": video})
}

func (h *Handler) ListVideos(c *gin.Context) {
	var videos []models.Video
	if err := h.db.Order("created_at desc").Find(&videos).Error; err != nil {
		h.log.Error("list videos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching videos"})
		return
	}
	if len(videos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no videos found"})
		return
	}

	h.populateOwners(videos)
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

func (h *Handler) populateOwners(videos []models.Video) {
	ids := make([]uint, 0, len(videos))
	seen := make(map[uint]struct{}, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.UserID]; !ok {
			seen[v.UserID] = struct{}{}
			ids = append(ids, v.UserID)
		}
	}

	var owners []models.User
	if err := h.db.Select("id, name").Where("id IN (?)", ids).Find(&owners).Error; err != nil {
		h.log.Warn("populate owners", zap.Error(err))
		return
	}
	names := make(map[uint]string, len(owners))
	for _, o := range owners {
		names[o.ID] = o.Name
	}
	for i := range videos {
		videos[i].OwnerName = names[videos[i].UserID]
	}
}
