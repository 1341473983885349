package api

import (
	"errors"
	"net/http"

	"shiftboard/internal/domain/user"
	reqdto "shiftboard/internal/handler/dto/request"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/pkg/config"
	"shiftboard/internal/pkg/cookie"
	"shiftboard/internal/pkg/jwt"
	"shiftboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUseCase usecase.CompanyUseCase
	jwtService     *jwt.Service
	cookieCfg      config.CookieConfig
}

func NewCompanyHandler(companyUseCase usecase.CompanyUseCase, jwtService *jwt.Service, cfg config.Config) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: companyUseCase,
		jwtService:     jwtService,
		cookieCfg:      cfg.Cookie,
	}
}

// @Summary Register a company
// @Description Create a company and its first manager; sets the session cookie
// @Tags companies
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCompanyRequest true "Registration request"
// @Success 201 {object} resdto.RegisterCompanyResponse
// @Failure 400 {object} map[string]string
// @Router /companies/register [post]
func (h *CompanyHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	result, err := h.companyUseCase.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCompanyEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Company email already exists",
			})
		case errors.Is(err, usecase.ErrUserEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "User email already exists",
			})
		case errors.Is(err, usecase.ErrRegistrationRole):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid role for company registration",
			})
		case errors.Is(err, user.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email format",
			})
		case errors.Is(err, user.ErrPasswordTooWeak):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Password must be at least 6 characters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to register company",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, resdto.RegisterCompanyResponse{
		Message:   "Company and manager registered successfully",
		CompanyID: result.CompanyID,
		UserID:    result.UserID,
	})
}
