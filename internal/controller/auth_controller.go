package controller

import (
	"errors"
	"net/http"

	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/middleware"
	"ossu_arabic_backend/internal/service"
	"ossu_arabic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService     *service.AuthService
	ProgressService *service.ProgressService
	Config          *config.Config
}

func NewAuthController(authService *service.AuthService, progressService *service.ProgressService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService:     authService,
		ProgressService: progressService,
		Config:          cfg,
	}
}

type guestSessionRequest struct {
	PreferredLanguage string `json:"preferredLanguage"`
}

// GuestSession godoc
// @Summary Mint a guest session
// @Description Creates an anonymous 24h session record
// @Tags auth
// @Accept json
// @Produce json
// @Param body body guestSessionRequest false "Session preferences"
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/guest [post]
func (c *AuthController) GuestSession(ctx *gin.Context) {
	var req guestSessionRequest
	// body is optional, malformed JSON falls back to defaults
	_ = ctx.ShouldBindJSON(&req)
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = "ar"
	}

	session, err := c.AuthService.GuestSession(ctx.Request.Context(), req.PreferredLanguage)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	token, _ := util.GenerateSessionToken(session, c.Config.JWT.Secret)

	ctx.JSON(http.StatusOK, gin.H{
		"success":           true,
		"userId":            session.UserID,
		"sessionType":       session.Type,
		"preferredLanguage": session.PreferredLanguage,
		"token":             token,
		"message":           "Guest session created successfully",
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Login godoc
// @Summary Look up a user by username or email
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Login identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Username or email is required")
		return
	}

	if req.Username == "" && req.Email == "" {
		util.BadRequest(ctx, "Username or email is required")
		return
	}

	user, session, err := c.AuthService.Login(ctx.Request.Context(), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
			return
		}
		util.InternalError(ctx, err)
		return
	}

	token, _ := util.GenerateSessionToken(session, c.Config.JWT.Secret)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
		"token":   token,
		"message": "Login successful",
	})
}

type registerRequest struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	DisplayName       string `json:"displayName"`
	PreferredLanguage string `json:"preferredLanguage"`
	Password          string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Inserts the user row and mints a 7-day session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "Registration details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Username and email are required")
		return
	}

	if req.Username == "" || req.Email == "" {
		util.BadRequest(ctx, "Username and email are required")
		return
	}
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = "ar"
	}

	user, session, err := c.AuthService.Register(ctx.Request.Context(),
		req.Username, req.Email, req.DisplayName, req.PreferredLanguage, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrUserExists) {
			util.Conflict(ctx, "Username or email already exists")
			return
		}
		util.InternalError(ctx, err)
		return
	}

	token, _ := util.GenerateSessionToken(session, c.Config.JWT.Secret)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
		"token":   token,
		"message": "Registration successful",
	})
}

// GetProfile godoc
// @Summary Session profile with progress summary
// @Tags auth
// @Produce json
// @Param userId query string true "User id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/auth/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		if claims := middleware.IdentityFromContext(ctx); claims != nil {
			userID = claims.UserID
		}
	}
	if userID == "" {
		util.BadRequest(ctx, "User ID is required")
		return
	}

	session, err := c.AuthService.Profile(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx, "Session not found")
			return
		}
		util.InternalError(ctx, err)
		return
	}

	mapping, err := c.ProgressService.Get(ctx.Request.Context(), userID)
	if err != nil {
		util.InternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"profile":         session,
		"progressSummary": service.Summarize(mapping),
	})
}
