package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/portfolio_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/SscSPs/portfolio_tracker/internal/i18n"
	"github.com/SscSPs/portfolio_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler serves the signed-in user's profile.
type userHandler struct {
	userService portssvc.UserReaderSvc
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserReaderSvc) {
	h := &userHandler{userService: userService}
	rg.GET("/me", middleware.RequireAuth(), h.me)
}

// me godoc
// @Summary Current user
// @Description Returns the signed-in user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) me(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: i18n.T(c.Request.Context(), i18n.MsgSessionExpired)})
		return
	}
	if err != nil {
		respondError(c, err, i18n.MsgInternalError)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
