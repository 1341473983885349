package api

import (
	"errors"
	"net/http"

	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/pkg/config"
	"shiftboard/internal/pkg/cookie"
	"shiftboard/internal/pkg/jwt"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	resolver    usecase.SessionResolver
	jwtService  *jwt.Service
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, resolver usecase.SessionResolver, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		resolver:    resolver,
		jwtService:  jwtService,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary User login
// @Description Login with email and password; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email and password are required",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, _, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, usecase.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is not active",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to sign in",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Login successful"})
}

// @Summary Verify session
// @Description Resolve the session cookie into the authenticated principal
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.VerifyResponse
// @Failure 401 {object} map[string]string
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	token := cookie.TokenFromRequest(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No token provided",
		})
		return
	}

	principal, err := h.resolver.Resolve(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": verifyErrorMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, resdto.VerifyResponse{User: resdto.FromPrincipal(principal)})
}

// @Summary User logout
// @Description Clear the session cookie. Issued tokens remain valid until
// @Description their natural expiry; there is no server-side revocation.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func verifyErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, jwt.ErrInvalidSignature):
		return "Invalid token signature"
	default:
		return "Invalid token"
	}
}
