package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/service"
)

// PageSectionHandler exposes the content blocks attached to individual pages.
type PageSectionHandler struct {
	sectionService *service.PageSectionService
	assembler      *service.AssemblerService
}

func NewPageSectionHandler(sectionService *service.PageSectionService, assembler *service.AssemblerService) *PageSectionHandler {
	return &PageSectionHandler{
		sectionService: sectionService,
		assembler:      assembler,
	}
}

func (h *PageSectionHandler) List(c *gin.Context) {
	sections, err := h.sectionService.List(c.Param("pageId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"sections": sections})
}

func (h *PageSectionHandler) Create(c *gin.Context) {
	var req models.CreatePageSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sectionService.Create(c.Param("pageId"), req, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "section created", gin.H{"section": section})
}

func (h *PageSectionHandler) Get(c *gin.Context) {
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

func (h *PageSectionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid section id")
		return
	}

	var req models.UpdatePageSectionRequest
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

func (h *PageSectionHandler) Delete(c *gin.Context) {
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

func (h *PageSectionHandler) Reorder(c *gin.Context) {
	var req models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.sectionService.Reorder(c.Param("pageId"), req.SectionIDs, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "sections reordered", gin.H{"result": result})
}

// Preview renders a single block without persisting it, for the editor's
// live preview pane.
func (h *PageSectionHandler) Preview(c *gin.Context) {
	var req models.PreviewSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fragment, err := h.assembler.Preview(req, viewerFromContext(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond(c, http.StatusOK, "", gin.H{"html": fragment})
}
