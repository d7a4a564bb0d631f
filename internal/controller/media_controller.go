package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	Storage *service.StorageService
}

func NewMediaController(storage *service.StorageService) *MediaController {
	return &MediaController{Storage: storage}
}

// GetMedia godoc
// @Summary Fetch a stored media object
// @Description Streams the object with long-lived cache headers
// @Tags media
// @Produce octet-stream
// @Param name path string true "Object name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /api/media/{name} [get]
func (c *MediaController) GetMedia(ctx *gin.Context) {
	name := strings.TrimPrefix(ctx.Param("name"), "/")
	if name == "" {
		util.NotFound(ctx, "File not found")
		return
	}

	body, info, err := c.Storage.Download(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, util.ErrFileNotFound) {
			util.NotFound(ctx, "File not found")
			return
		}
		util.InternalError(ctx, err)
		return
	}
	defer body.Close()

	if info.ETag != "" {
		ctx.Header("etag", info.ETag)
	}
	ctx.Header("cache-control", "public, max-age=31536000")
	ctx.DataFromReader(http.StatusOK, info.Size, info.ContentType, body, nil)
}

// Upload godoc
// @Summary Store an uploaded file
// @Description Stores the multipart file under category/userId with metadata
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Param userId formData string false "Uploader id"
// @Param category formData string false "Object category"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/media/upload [post]
func (c *MediaController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "No file provided")
		return
	}

	userID := ctx.PostForm("userId")
	if userID == "" {
		userID = anonymousUser
	}
	category := ctx.PostForm("category")
	if category == "" {
		category = "general"
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("%s/%s/%d_%s%s", category, userID, time.Now().UnixMilli(), util.RandomToken(9), ext)

	metadata := map[string]string{
		"originalName": file.Filename,
		"uploadedBy":   userID,
		"uploadedAt":   time.Now().UTC().Format(time.RFC3339),
		"category":     category,
	}

	src, err := file.Open()
	if err != nil {
		util.InternalError(ctx, err)
		return
	}
	defer src.Close()

	var reader io.Reader = src
	var video *util.VideoInfo

	// video uploads go through a temp file so ffprobe can inspect them
	if strings.HasPrefix(contentType, "video/") {
		tmpPath := filepath.Join(os.TempDir(), "upload_"+util.RandomToken(9)+ext)
		if err := ctx.SaveUploadedFile(file, tmpPath); err == nil {
			defer os.Remove(tmpPath)
			if info, err := util.ProbeVideo(tmpPath); err == nil {
				video = info
			}
			if f, err := os.Open(tmpPath); err == nil {
				defer f.Close()
				reader = f
			}
		}
	}

	if err := c.Storage.Upload(ctx.Request.Context(), fileName, reader, file.Size, contentType, metadata); err != nil {
		util.InternalError(ctx, err)
		return
	}

	resp := gin.H{
		"success":      true,
		"fileName":     fileName,
		"originalName": file.Filename,
		"size":         file.Size,
		"type":         contentType,
		"url":          "/api/media/" + fileName,
		"message":      "File uploaded successfully",
	}
	if video != nil {
		resp["video"] = gin.H{
			"duration": video.Duration,
			"width":    video.Width,
			"height":   video.Height,
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
