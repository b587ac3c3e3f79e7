package controllers

import (
	"net/http"

	"foodgram/internal/middleware"
	"foodgram/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users services.UserService
}

func NewAuthController(users services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Login godoc
// @Summary Obtain an auth token
// @Description Exchange email and password for a token used as "Authorization: Token {token}"
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body services.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Token issued"
// @Failure 400 {object} map[string]interface{} "Unable to log in with provided credentials"
// @Router /api/auth/token/login/ [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := ac.users.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	respondSuccess(c, http.StatusOK, "Token issued", token)
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Security TokenAuth
// @Success 204 "Token revoked"
// @Failure 401 {object} map[string]interface{} "Authentication credentials were not provided"
// @Router /api/auth/token/logout/ [post]
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.users.Logout(c.Request.Context(), middleware.CurrentClaims(c)); err != nil {
		respondServiceError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}
