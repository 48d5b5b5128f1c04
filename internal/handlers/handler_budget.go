package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

type budgetHandler struct {
	budgetService portssvc.BudgetSvc
}

func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvc) {
	h := &budgetHandler{budgetService: bs}
	budget := rg.Group("/budget")
	{
		budget.POST("/close-month", h.closeMonth)
	}
}

// closeMonth godoc
// @Summary Close the month
// @Description Starts a new budget period for the caller and their spouse with the given budget and zero spending
// @Tags budget
// @Accept json
// @Produce json
// @Param request body dto.CloseMonthRequest true "New monthly budget"
// @Success 200 {object} dto.CloseMonthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budget/close-month [post]
func (h *budgetHandler) closeMonth(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.CloseMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid new monthly budget is required"})
		return
	}

	summary, err := h.budgetService.CloseMonth(c.Request.Context(), caller, *req.NewMonthlyBudget)
	if err != nil {
		respondWithError(c, err, "Failed to close month")
		return
	}
	c.JSON(http.StatusOK, dto.ToCloseMonthResponse(summary))
}
