package handlers

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"nearmarket/internal/utils"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var uploadFolders = map[string]bool{
	"products":    true,
	"ads":         true,
	"classifieds": true,
	"categories":  true,
}

// UploadHandler accepts listing and advertisement images, stores the
// original plus a card thumbnail, and hands back the keys.
type UploadHandler struct {
	storage storage.StorageProvider
	log     *logger.Logger
}

func NewUploadHandler(storageProvider storage.StorageProvider, log *logger.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storageProvider,
		log:     log,
	}
}

// Upload handles POST /uploads.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required")
		return
	}
	if fileHeader.Size > utils.MaxImageSize {
		utils.BadRequestResponse(c, "Image exceeds the 5MB limit")
		return
	}
	if !utils.IsValidImageFormat(fileHeader.Filename) {
		utils.BadRequestResponse(c, "Unsupported image format")
		return
	}

	folder := c.DefaultPostForm("folder", "products")
	if !uploadFolders[folder] {
		utils.BadRequestResponse(c, "Unknown upload folder")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.WithError(err).Error("failed to open uploaded file")
		utils.InternalServerErrorResponse(c)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	// Thumbnail first: decoding doubles as corruption detection before
	// anything is stored.
	thumbnail, err := utils.GenerateThumbnail(file, fileHeader.Filename)
	if err != nil {
		utils.BadRequestResponse(c, "Image could not be decoded")
		return
	}

	var thumbBuf bytes.Buffer
	if err := utils.EncodeImage(thumbnail, strings.TrimPrefix(ext, "."), &thumbBuf, 85); err != nil {
		h.log.WithError(err).Error("failed to encode thumbnail")
		utils.InternalServerErrorResponse(c)
		return
	}

	if _, err := file.Seek(0, 0); err != nil {
		h.log.WithError(err).Error("failed to rewind upload")
		utils.InternalServerErrorResponse(c)
		return
	}

	ctx := c.Request.Context()
	original, err := h.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      file,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		h.log.WithError(err).Error("failed to store image")
		utils.InternalServerErrorResponse(c)
		return
	}

	thumbKey := thumbnailKey(key)
	if _, err := h.storage.Upload(ctx, &storage.UploadRequest{
		Key:         thumbKey,
		Reader:      &thumbBuf,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        int64(thumbBuf.Len()),
	}); err != nil {
		// The original stands on its own; a missing thumbnail is cosmetic.
		h.log.WithError(err).WithField("key", thumbKey).Warn("failed to store thumbnail")
		thumbKey = ""
	}

	utils.CreatedResponse(c, "Image uploaded", gin.H{
		"key":           original.Key,
		"url":           original.URL,
		"thumbnail_key": thumbKey,
	})
}

func thumbnailKey(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb" + ext
}
