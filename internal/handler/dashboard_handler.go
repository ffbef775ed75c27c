package handler

import (
	"net/http"

	"backoffice/internal/model"
	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	metricsService service.MetricsService
	store          service.Store
}

func NewDashboardHandler(metricsService service.MetricsService, store service.Store) *DashboardHandler {
	return &DashboardHandler{metricsService: metricsService, store: store}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/api/dashboard")
	{
		dashboard.GET("/summary", h.GetSummary)
		dashboard.GET("/shipments", h.GetShipmentRows)
		dashboard.GET("/expenses", h.GetExpenseDashboard)
		dashboard.POST("/refresh", h.Refresh)
	}
	router.GET("/api/options", h.GetOptions)
}

// @Summary      Get Form Option Lists
// @Description  Master dropdown lists for the shipment, intake and expense forms
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/options [get]
func (h *DashboardHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"goods":         model.GoodsOptions,
		"shippingLines": model.ShippingLines,
		"warehouses":    model.WarehouseLocations,
		"costTypes":     model.CostTypes,
	}))
}

// @Summary      Get Dashboard Summary
// @Description  Headline totals over shipments, receipts and expenses
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      502 {object} response.Response "Upstream fetch failed"
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.metricsService.DashboardSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// @Summary      Get Reconciled Shipment Rows
// @Description  Shipments joined with per-invoice expenses and derived metrics
// @Tags         Dashboard
// @Produce      json
// @Param        search  query string false "Substring match on invoice, BL, goods, container"
// @Param        invoice query string false "Substring match on invoice number"
// @Param        from    query string false "Created from (YYYY-MM-DD)"
// @Param        to      query string false "Created to (YYYY-MM-DD)"
// @Success      200 {object} response.Response
// @Failure      502 {object} response.Response "Upstream fetch failed"
// @Router       /api/dashboard/shipments [get]
func (h *DashboardHandler) GetShipmentRows(c *gin.Context) {
	filter := service.ShipmentFilter{
		Search:  c.Query("search"),
		Invoice: c.Query("invoice"),
		Range:   service.ParseDateRange(c.Query("from"), c.Query("to")),
	}
	rows, err := h.metricsService.ShipmentRows(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rows))
}

// @Summary      Get Expense Dashboard
// @Description  Expense totals and flattened rows, optionally bounded by date
// @Tags         Dashboard
// @Produce      json
// @Param        from query string false "Expense date from (YYYY-MM-DD)"
// @Param        to   query string false "Expense date to (YYYY-MM-DD)"
// @Success      200 {object} response.Response
// @Failure      502 {object} response.Response "Upstream fetch failed"
// @Router       /api/dashboard/expenses [get]
func (h *DashboardHandler) GetExpenseDashboard(c *gin.Context) {
	rng := service.ParseDateRange(c.Query("from"), c.Query("to"))
	dashboard, err := h.metricsService.ExpenseDashboard(c.Request.Context(), rng)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, dashboard))
}

// Refresh forces a snapshot reload from the remote collections.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if err := h.store.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"refreshed": true}))
}
