package handler

import (
	"net/http"

	"backoffice/internal/middleware"
	"backoffice/internal/model"
	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	intakeService service.IntakeService
	guard         *middleware.Guard
}

func NewIntakeHandler(intakeService service.IntakeService, guard *middleware.Guard) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService, guard: guard}
}

func (h *IntakeHandler) RegisterRoutes(router *gin.RouterGroup) {
	intake := router.Group("/api/intake")
	{
		intake.GET("", h.GetSession)
		intake.POST("/load", h.guard.Gate(), h.Load)
		intake.POST("/select", h.guard.Gate(), h.Select)
		intake.POST("/queue", h.guard.Gate(), h.Queue)
		intake.DELETE("/queue/:containerNumber", h.guard.Gate(), h.Remove)
		intake.POST("/commit", h.guard.Gate(), h.Commit)
	}
}

// GetSession returns the current intake session view
func (h *IntakeHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.intakeService.State()))
}

// Load starts a session over one shipment's containers
func (h *IntakeHandler) Load(c *gin.Context) {
	var req struct {
		ShipmentID string `json:"shipmentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	view, err := h.intakeService.Load(c.Request.Context(), req.ShipmentID)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, view))
}

// Select picks a container and prefills its intake form
func (h *IntakeHandler) Select(c *gin.Context) {
	var req struct {
		ContainerNumber string `json:"containerNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	view, err := h.intakeService.Select(req.ContainerNumber)
	if err != nil {
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, view))
}

// Queue adds or replaces the current container's record in the session queue
func (h *IntakeHandler) Queue(c *gin.Context) {
	var record model.IntakeRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	view, err := h.intakeService.Queue(record)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, view))
}

// Remove drops a queued record by container number
func (h *IntakeHandler) Remove(c *gin.Context) {
	view, err := h.intakeService.Remove(c.Param("containerNumber"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, view))
}

// Commit posts the whole queue to the remote collections
func (h *IntakeHandler) Commit(c *gin.Context) {
	view, err := h.intakeService.Commit(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, view))
}
