package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendora/marketplace/internal/adapters/http/handlers"
	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/service"
	"github.com/vendora/marketplace/internal/core/serviceerrors"
)

type DashboardController struct {
	dashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats godoc
// @Summary     Dashboard statistics
// @Description Returns inventory and sales statistics for an owner
// @Tags        dashboard
// @Produce     json
// @Param       owner_id query    string true  "Owner ID"
// @Param       account  query    string true  "Account name"
// @Success     200      {object} domain.DashboardStats
// @Failure     400      {object} handlers.ErrorResponse
// @Failure     500      {object} handlers.ErrorResponse
// @Router      /api/v1/dashboard/stats [get]
func (dc *DashboardController) GetStats(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if !domain.ValidateID(ownerID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid owner ID"))
		return
	}
	accountName := c.Query("account")
	if accountName == "" {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("account is required"))
		return
	}

	stats, err := dc.dashboardService.GetStats(c.Request.Context(), domain.ID(ownerID), accountName)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
