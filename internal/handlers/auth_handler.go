package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"attraction-cms-backend/internal/constants"
	"attraction-cms-backend/internal/models"
	"attraction-cms-backend/internal/service"
)

const authTokenTTLSeconds = 7 * 24 * 60 * 60

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	secure := c.Request.TLS != nil
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(constants.AuthTokenCookieName, token, maxAge, "/", "", secure, true)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.authService.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setAuthCookie(c, auth.Token, authTokenTTLSeconds)
	respond(c, http.StatusCreated, "account created", gin.H{"token": auth.Token, "user": auth.User})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	auth, err := h.authService.Login(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setAuthCookie(c, auth.Token, authTokenTTLSeconds)
	respond(c, http.StatusOK, "logged in", gin.H{"token": auth.Token, "user": auth.User})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	respond(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.authService.GetProfile(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(currentUserID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "profile updated", gin.H{"user": user})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.ChangePassword(currentUserID(c), req); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "password changed", nil)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"users": users})
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.UpdateUser(uint(id), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "user updated", gin.H{"user": user})
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	if uint(id) == currentUserID(c) {
		respondError(c, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	if err := h.authService.DeleteUser(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	respond(c, http.StatusOK, "user deleted", nil)
}
