package handler

import (
	"errors"
	"net/http"

	"backoffice/internal/service"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	export := router.Group("/api/export")
	{
		export.GET("/invoice/:invoiceNumber", h.ExportInvoice)
		export.GET("/shipment/:id", h.ExportShipment)
	}
}

func (h *ExportHandler) serve(c *gin.Context, filename string, data []byte, err error) {
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportInvoice renders the invoice summary sheet as PDF
func (h *ExportHandler) ExportInvoice(c *gin.Context) {
	filename, data, err := h.exportService.InvoicePDF(c.Request.Context(), c.Param("invoiceNumber"))
	h.serve(c, filename, data, err)
}

// ExportShipment renders a single shipment sheet as PDF
func (h *ExportHandler) ExportShipment(c *gin.Context) {
	filename, data, err := h.exportService.ShipmentPDF(c.Request.Context(), c.Param("id"))
	h.serve(c, filename, data, err)
}
