package handler

import (
	"net/http"

	"backoffice/internal/middleware"
	"backoffice/internal/model"
	"backoffice/internal/service"
	"backoffice/pkg/pagination"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type WarehouseHandler struct {
	receivingService service.ReceivingService
	guard            *middleware.Guard
}

func NewWarehouseHandler(receivingService service.ReceivingService, guard *middleware.Guard) *WarehouseHandler {
	return &WarehouseHandler{receivingService: receivingService, guard: guard}
}

func (h *WarehouseHandler) RegisterRoutes(router *gin.RouterGroup) {
	warehouse := router.Group("/api/warehouse-records")
	{
		warehouse.GET("", h.GetWarehouseRecords)
		warehouse.POST("", h.guard.Gate(), h.CreateWarehouseRecord)
		warehouse.DELETE("/:id", h.guard.Gate(), h.DeleteWarehouseRecord)
	}
	customer := router.Group("/api/customer-records")
	{
		customer.GET("", h.GetCustomerRecords)
		customer.DELETE("/:id", h.guard.Gate(), h.DeleteCustomerRecord)
	}
}

func (h *WarehouseHandler) GetWarehouseRecords(c *gin.Context) {
	params := pagination.Parse(c)
	rng := service.ParseDateRange(c.Query("from"), c.Query("to"))
	records, total, err := h.receivingService.WarehouseRecords(c.Request.Context(), params.Page, params.Limit, rng)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.List(http.StatusOK, records, params.Page, params.Limit, total))
}

func (h *WarehouseHandler) GetCustomerRecords(c *gin.Context) {
	params := pagination.Parse(c)
	rng := service.ParseDateRange(c.Query("from"), c.Query("to"))
	records, total, err := h.receivingService.CustomerRecords(c.Request.Context(), params.Page, params.Limit, rng)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.List(http.StatusOK, records, params.Page, params.Limit, total))
}

func (h *WarehouseHandler) CreateWarehouseRecord(c *gin.Context) {
	var record model.IntakeRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.receivingService.CreateWarehouseRecord(c.Request.Context(), record)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

func (h *WarehouseHandler) DeleteWarehouseRecord(c *gin.Context) {
	if err := h.receivingService.DeleteWarehouseRecord(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

func (h *WarehouseHandler) DeleteCustomerRecord(c *gin.Context) {
	if err := h.receivingService.DeleteCustomerRecord(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}
