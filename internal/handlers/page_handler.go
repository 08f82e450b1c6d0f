package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/pagetemplates"
	"attraction-cms-backend/internal/render"
	"attraction-cms-backend/internal/service"
)

// PageHandler exposes the file-backed pages and their assembled output.
type PageHandler struct {
	pageService *service.PageService
	assembler   *service.AssemblerService
}

func NewPageHandler(pageService *service.PageService, assembler *service.AssemblerService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
		assembler:   assembler,
	}
}

func viewerFromContext(c *gin.Context) render.Viewer {
	return render.Viewer{
		ID:   currentUserID(c),
		Name: c.GetString("name"),
		Role: c.GetString("role"),
	}
}

func (h *PageHandler) Templates(c *gin.Context) {
	respond(c, http.StatusOK, "", gin.H{"templates": pagetemplates.Types()})
}

func (h *PageHandler) Create(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.pageService.CreateFromTemplate(req, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusCreated, "page created", gin.H{"page": page})
}

func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.pageService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"pages": pages})
}

func (h *PageHandler) Get(c *gin.Context) {
	page, content, err := h.pageService.ReadHTML(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"page": page, "content": string(content)})
}

func (h *PageHandler) Save(c *gin.Context) {
	var req models.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.pageService.SaveHTML(c.Param("slug"), req.Content, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "page saved", gin.H{"page": page})
}

func (h *PageHandler) Publish(c *gin.Context) {
	page, err := h.pageService.SetPublished(c.Param("slug"), true, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "page published", gin.H{"page": page})
}

func (h *PageHandler) Unpublish(c *gin.Context) {
	page, err := h.pageService.SetPublished(c.Param("slug"), false, currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "page unpublished", gin.H{"page": page})
}

func (h *PageHandler) Delete(c *gin.Context) {
	if err := h.pageService.Delete(c.Param("slug")); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "page deleted", nil)
}

// Render returns the fully assembled page, with all active section blocks
// spliced into the backing file.
func (h *PageHandler) Render(c *gin.Context) {
	html, err := h.assembler.Assemble(c.Param("slug"), viewerFromContext(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Serve renders a published page for anonymous visitors.
func (h *PageHandler) Serve(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.pageService.GetBySlug(slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !page.IsPublished {
		respondError(c, http.StatusNotFound, "page not found")
		return
	}

	html, err := h.assembler.Assemble(slug, render.Viewer{})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
