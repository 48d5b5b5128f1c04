package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// expenseHandler serves the household ledger.
type expenseHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newExpenseHandler(ls portssvc.LedgerSvcFacade) *expenseHandler {
	return &expenseHandler{ledgerService: ls}
}

func registerExpenseRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newExpenseHandler(ls)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.POST("", h.addExpense)
		expenses.PUT("/:expenseID", h.editExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
}

// addExpense godoc
// @Summary Add an expense
// @Description Records an entry and bills it to the account chosen by attribution. Shared entries are billed to the caller.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.ExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid fields or attribution"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) addExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.ledgerService.AddExpense(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to add expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List household expenses
// @Description Returns the entries of the caller and their spouse, newest first
// @Tags expenses
// @Produce json
// @Param year query int false "Calendar year, requires month"
// @Param month query int false "Calendar month 1-12, requires year"
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	expenses, err := h.ledgerService.ListExpenses(c.Request.Context(), caller, params.ToFilter())
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponses(expenses))
}

// editExpense godoc
// @Summary Edit an expense
// @Description Replaces the entry's fields. The attribution may move it between the two members but cannot be shared.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expenseID path int true "Expense ID"
// @Param expense body dto.ExpenseRequest true "New expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Expense belongs to another household"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) editExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	expenseID, ok := idParam(c, "expenseID", "expense")
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.ledgerService.EditExpense(c.Request.Context(), caller, expenseID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param expenseID path int true "Expense ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	expenseID, ok := idParam(c, "expenseID", "expense")
	if !ok {
		return
	}

	if err := h.ledgerService.DeleteExpense(c.Request.Context(), caller, expenseID); err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}
