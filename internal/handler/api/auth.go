package api

import (
	"net/http"

	reqdto "glamping-api/internal/handler/dto/request"
	resdto "glamping-api/internal/handler/dto/response"
	"glamping-api/internal/handler/httperr"
	"glamping-api/internal/handler/middleware"
	"glamping-api/internal/pkg/config"
	"glamping-api/internal/pkg/cookie"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/pkg/jwt"
	"glamping-api/internal/usecase/commands"
	"glamping-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Login with email and password; tokens are also set as HttpOnly cookies
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope{data=resdto.LoginResponse}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		}
		return
	}

	h.setCookies(c, result.TokenPair)

	admin, err := h.userQueries.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		abortWithUsecaseError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, resdto.OKWithMessage("Login successful", resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtService.AccessTokenDuration().Seconds()),
		User:        resdto.FromUserView(admin),
	}))
}

// @Summary Refresh admin tokens
// @Description Rotates both tokens using the refresh token cookie (or body)
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh token when cookies are unavailable"
// @Success 200 {object} resdto.Envelope{data=resdto.LoginResponse}
// @Failure 401 {object} httperr.Response
// @Router /admin/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrTokenValidation, "Refresh token required", nil)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		case errs.Is(err, commands.ErrTokenValidation):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		}
		return
	}

	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.OK(resdto.LoginResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwtService.AccessTokenDuration().Seconds()),
	}))
}

// @Summary Admin logout
// @Description Clears the token cookies; bearer clients simply drop their token
// @Tags admin-auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags admin-auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		// Unexpected: route must sit behind RequireAuth
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), msgInternal, nil)
		return
	}

	admin, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, resdto.OK(resdto.FromUserView(admin)))
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	if h.jwtService == nil || pair == nil {
		return
	}
	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
}
