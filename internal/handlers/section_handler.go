package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/service"
)

// SectionHandler exposes the globally-ordered site sections.
type SectionHandler struct {
	sectionService *service.SectionService
	uploadService  *service.UploadService
}

func NewSectionHandler(sectionService *service.SectionService, uploadService *service.UploadService) *SectionHandler {
	return &SectionHandler{
		sectionService: sectionService,
		uploadService:  uploadService,
	}
}

func (h *SectionHandler) List(c *gin.Context) {
	sections, err := h.sectionService.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"sections": sections})
}

// ListActive serves the public site and only exposes active sections.
func (h *SectionHandler) ListActive(c *gin.Context) {
	sections, err := h.sectionService.GetActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"sections": sections})
}

func (h *SectionHandler) GetByName(c *gin.Context) {
	section, err := h.sectionService.GetActiveByName(c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"section": section})
}

func (h *SectionHandler) Create(c *gin.Context) {
	var req models.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sectionService.Create(req, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "section created", gin.H{"section": section})
}

func (h *SectionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	section, err := h.sectionService.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"section": section})
}

func (h *SectionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sectionService.Update(uint(id), req, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "section updated", gin.H{"section": section})
}

func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := h.sectionService.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "section deleted", nil)
}

// Reorder persists the submitted id sequence positionally and reports any ids
// that were skipped because they no longer exist.
func (h *SectionHandler) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.sectionService.Reorder(req.SectionIDs, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "sections reordered", gin.H{"result": result})
}

// UploadImage stores an image file for a section and attaches it to the
// section's content. The optional type query parameter (deck-N, background,
// or a free label) selects the content subdirectory and name suffix.
func (h *SectionHandler) UploadImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	section, err := h.sectionService.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	contentType := c.Query("type")
	relPath, err := h.uploadService.SaveSectionImage(section.Name, contentType, file)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	image := models.JSONMap{
		"url":  h.uploadService.PublicPath(relPath),
		"alt":  c.PostForm("alt"),
		"type": contentType,
	}
	section, err = h.sectionService.AttachImage(section.ID, image, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusCreated, "image uploaded", gin.H{
		"path":    relPath,
		"url":     h.uploadService.PublicPath(relPath),
		"section": section,
	})
}
