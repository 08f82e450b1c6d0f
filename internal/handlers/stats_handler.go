package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/repository"
	"attraction-cms-backend/pkg/cache"
)

// StatsHandler reports content counts for the admin dashboard and exposes
// cache administration.
type StatsHandler struct {
	userRepo        repository.UserRepository
	sectionRepo     repository.SectionRepository
	pageRepo        repository.PageRepository
	pageSectionRepo repository.PageSectionRepository
	cache           *cache.Cache
}

func NewStatsHandler(
	userRepo repository.UserRepository,
	sectionRepo repository.SectionRepository,
	pageRepo repository.PageRepository,
	pageSectionRepo repository.PageSectionRepository,
	cacheService *cache.Cache,
) *StatsHandler {
	return &StatsHandler{
		userRepo:        userRepo,
		sectionRepo:     sectionRepo,
		pageRepo:        pageRepo,
		pageSectionRepo: pageSectionRepo,
		cache:           cacheService,
	}
}

func (h *StatsHandler) Stats(c *gin.Context) {
	users, err := h.userRepo.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	sections, err := h.sectionRepo.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	pages, err := h.pageRepo.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	pageSections, err := h.pageSectionRepo.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}

	respond(c, http.StatusOK, "", gin.H{"stats": gin.H{
		"users":         users,
		"sections":      sections,
		"pages":         pages,
		"page_sections": pageSections,
	}})
}

func (h *StatsHandler) FlushCache(c *gin.Context) {
	if h.cache == nil {
		respondError(c, http.StatusBadRequest, "cache is not enabled")
		return
	}
	if err := h.cache.FlushAll(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to flush cache")
		return
	}
	respond(c, http.StatusOK, "cache flushed", nil)
}
