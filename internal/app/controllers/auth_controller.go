// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
)

// AuthController handles login, logout and session introspection for
// both the staff browser surface and the mobile app.
type AuthController struct {
	authService      *services.AuthService
	phoneLoginSvc    *services.PhoneLoginService
	jwtService       *auth.JWTService
	cookieSecure     bool
	logger           zerolog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService *services.AuthService, phoneLoginSvc *services.PhoneLoginService, jwtService *auth.JWTService, cookieSecure bool, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService:   authService,
		phoneLoginSvc: phoneLoginSvc,
		jwtService:    jwtService,
		cookieSecure:  cookieSecure,
		logger:        logger,
	}
}

func (c *AuthController) isMobileClient(ctx *gin.Context) bool {
	return ctx.GetHeader("X-Client-Type") == "mobile" || ctx.GetHeader("Authorization") != ""
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(auth.SessionCookieName, token, c.jwtService.TokenMaxAge(), "/", "", c.cookieSecure, true)
}

// Login handles staff email+password login
// @Summary Staff login
// @Description Verifies staff credentials. Browsers receive the session as an httpOnly cookie; mobile clients get the token in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	token, account, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.LoginResponse{
		Message: "로그인 성공",
		User:    account.Public(),
	}
	if c.isMobileClient(ctx) {
		resp.Token = token
	} else {
		c.setSessionCookie(ctx, token)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// PhoneLogin handles phone-based identity resolution
// @Summary Phone login
// @Description One endpoint, two steps. A bare phone number returns masked student candidates; a chosen candidate with a typed name returns a session, provisioning the account on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PhoneLoginRequest true "Phone, optionally with chosen student"
// @Success 200 {object} dto.APIResponse{data=dto.PhoneLoginSuccessResponse}
// @Failure 404 {object} dto.APIResponse "Phone not registered"
// @Failure 401 {object} dto.APIResponse "Name mismatch"
// @Router /auth/phone-login [post]
func (c *AuthController) PhoneLogin(ctx *gin.Context) {
	var req dto.PhoneLoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.phoneLoginSvc.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// On step two, browsers also get the session as a cookie.
	if success, ok := result.(*dto.PhoneLoginSuccessResponse); ok && !c.isMobileClient(ctx) {
		c.setSessionCookie(ctx, success.Token)
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result})
}

// Logout clears the browser session
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(auth.SessionCookieName, "", -1, "/", "", c.cookieSecure, true)
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "로그아웃 되었습니다"}})
}

// Me returns the authenticated account
// @Summary Current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	account, err := c.authService.Me(ctx.Request.Context(), middleware.SessionAccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.MeResponse{User: account.Public()}})
}
