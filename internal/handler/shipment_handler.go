package handler

import (
	"errors"
	"net/http"

	"backoffice/internal/middleware"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/service"
	"backoffice/pkg/pagination"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	shipmentService service.ShipmentService
	guard           *middleware.Guard
}

func NewShipmentHandler(shipmentService service.ShipmentService, guard *middleware.Guard) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService, guard: guard}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/api/shipments")
	{
		shipments.GET("", h.GetShipments)
		shipments.POST("/bulk", h.guard.Gate(), h.BulkCreate)
		shipments.PUT("/:id", h.guard.Gate(), h.UpdateShipment)
		shipments.DELETE("/:id", h.guard.Gate(), h.DeleteShipment)
	}
	router.GET("/api/containers", h.GetContainers)
	router.GET("/api/generate-uid", h.GenerateUID)
}

// GetShipments returns the shipment collection, paged
func (h *ShipmentHandler) GetShipments(c *gin.Context) {
	params := pagination.Parse(c)
	shipments, total, err := h.shipmentService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.List(http.StatusOK, shipments, params.Page, params.Limit, total))
}

// BulkCreate creates a shipment together with its container detail records
func (h *ShipmentHandler) BulkCreate(c *gin.Context) {
	var input repository.BulkShipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.shipmentService.BulkCreate(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	var shipment model.Shipment
	if err := c.ShouldBindJSON(&shipment); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	updated, err := h.shipmentService.Update(c.Request.Context(), c.Param("id"), shipment)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, updated))
}

func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	if err := h.shipmentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// GetContainers returns the container detail collection
func (h *ShipmentHandler) GetContainers(c *gin.Context) {
	containers, err := h.shipmentService.Containers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, containers))
}

// GenerateUID asks the remote service for a fresh container id
func (h *ShipmentHandler) GenerateUID(c *gin.Context) {
	uid, err := h.shipmentService.GenerateUID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"uid": uid}))
}
