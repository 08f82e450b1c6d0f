package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/service"
)

// UploadHandler stores editor file uploads not bound to a specific section.
type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file is required")
		return
	}

	fileName, err := h.uploadService.SaveFile(file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "file uploaded", gin.H{
		"file_name": fileName,
		"url":       h.uploadService.PublicPath(fileName),
	})
}
