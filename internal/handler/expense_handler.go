package handler

import (
	"net/http"

	"backoffice/internal/middleware"
	"backoffice/internal/model"
	"backoffice/internal/repository"
	"backoffice/internal/service"
	"backoffice/pkg/pagination"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
	guard          *middleware.Guard
}

func NewExpenseHandler(expenseService service.ExpenseService, guard *middleware.Guard) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, guard: guard}
}

func (h *ExpenseHandler) RegisterRoutes(router *gin.RouterGroup) {
	expenses := router.Group("/api/expenses")
	{
		expenses.GET("", h.GetExpenses)
		expenses.POST("/bulk-create", h.guard.Gate(), h.BulkCreateExpenses)
		expenses.PUT("/:id", h.guard.Gate(), h.UpdateExpense)
		expenses.DELETE("/:id", h.guard.Gate(), h.DeleteExpense)
	}
}

// GetExpenses returns the expense collection, paged
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	params := pagination.Parse(c)
	expenses, total, err := h.expenseService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.List(http.StatusOK, expenses, params.Page, params.Limit, total))
}

// BulkCreateExpenses books shared cost lines against a set of containers
func (h *ExpenseHandler) BulkCreateExpenses(c *gin.Context) {
	var input repository.BulkExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.expenseService.BulkCreate(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	var expense model.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	updated, err := h.expenseService.Update(c.Request.Context(), c.Param("id"), expense)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, updated))
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}
