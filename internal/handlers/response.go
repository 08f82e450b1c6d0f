package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/service"
)

// respond writes the standard success envelope, merging payload keys at the
// top level next to the success flag.
func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// unknown-entity errors become 404, validation and conflict errors 400, and
// anything unexpected a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrPageFileNotFound),
		errors.Is(err, service.ErrPageSectionNotFound),
		errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSectionExists),
		errors.Is(err, service.ErrPageExists),
		errors.Is(err, service.ErrInvalidTemplateType),
		errors.Is(err, service.ErrInvalidSectionType),
		errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrInvalidSignupCode),
		errors.Is(err, service.ErrUnsupportedFileType),
		errors.Is(err, service.ErrFileTooLarge):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountInactive):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

func currentUserID(c *gin.Context) uint {
	if id, exists := c.Get("user_id"); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
