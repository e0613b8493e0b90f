package handlers

import (
	"net/http"

	"github.com/SscSPs/portfolio_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

func registerActionRoutes(rg *gin.RouterGroup) {
	rg.GET("/actions", listActions)
}

// listActions godoc
// @Summary Available actions
// @Description Lists every transaction type. Only deposits can be recorded so far.
// @Tags actions
// @Produce json
// @Success 200 {array} dto.ActionResponse
// @Router /actions [get]
func listActions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToActionResponses())
}
