package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func groceries() dto.ExpenseRequest {
	return dto.ExpenseRequest{
		Title:       "Groceries",
		Amount:      250000,
		Category:    domain.CategoryFood,
		Date:        "2024-03-10",
		Attribution: domain.AttributionSelf,
	}
}

func (suite *HandlerTestSuite) TestAddExpense_Success() {
	req := groceries()
	created := &domain.Expense{
		ExpenseID: 5, AccountID: 1, Title: req.Title, Amount: req.Amount, Category: req.Category,
		Date: req.Date, Attribution: req.Attribution,
		AuditFields: domain.AuditFields{CreatedAt: time.Now(), LastUpdatedAt: time.Now()},
	}
	suite.ledgerService.On("AddExpense", mock.Anything, callerIs(1), req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/expenses", req, suite.tokenFor(ana()))

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.ExpenseResponse
	suite.decode(w, &resp)
	suite.Equal(int64(5), resp.ID)
	suite.Equal(int64(1), resp.AccountID)
	suite.Equal("2024-03-10", resp.Date)
}

func (suite *HandlerTestSuite) TestAddExpense_CarriesPairingFromToken() {
	req := groceries()
	req.Attribution = domain.AttributionSpouse
	paired := mock.MatchedBy(func(caller domain.Identity) bool {
		return caller.AccountID == 1 && caller.PairedAccountID != nil && *caller.PairedAccountID == 2
	})
	suite.ledgerService.On("AddExpense", mock.Anything, paired, req).
		Return(&domain.Expense{ExpenseID: 6, AccountID: 2, Amount: req.Amount}, nil).Once()

	w := suite.do(http.MethodPost, "/api/expenses", req, suite.tokenFor(ana()))
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestAddExpense_BindingErrors() {
	cases := map[string]func(r *dto.ExpenseRequest){
		"unknown category":    func(r *dto.ExpenseRequest) { r.Category = "Food" },
		"unknown attribution": func(r *dto.ExpenseRequest) { r.Attribution = "both" },
		"zero amount":         func(r *dto.ExpenseRequest) { r.Amount = 0 },
		"negative amount":     func(r *dto.ExpenseRequest) { r.Amount = -5 },
		"oversized amount":    func(r *dto.ExpenseRequest) { r.Amount = 1_000_000_000_001 },
		"bad date":            func(r *dto.ExpenseRequest) { r.Date = "10/03/2024" },
		"missing title":       func(r *dto.ExpenseRequest) { r.Title = "" },
	}
	for name, mutate := range cases {
		suite.Run(name, func() {
			req := groceries()
			mutate(&req)
			w := suite.do(http.MethodPost, "/api/expenses", req, suite.tokenFor(ana()))
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	suite.ledgerService.AssertNotCalled(suite.T(), "AddExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAddExpense_InvalidAttribution() {
	req := groceries()
	req.Attribution = domain.AttributionSpouse
	err := fmt.Errorf("%w: no paired account to attribute the expense to", apperrors.ErrInvalidAttribution)
	suite.ledgerService.On("AddExpense", mock.Anything, callerIs(1), req).Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/expenses", req, suite.tokenFor(ana()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("no paired account to attribute the expense to", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestAddExpense_StorageFailureIsOpaque() {
	req := groceries()
	err := fmt.Errorf("%w: add expense: disk I/O error", apperrors.ErrStorage)
	suite.ledgerService.On("AddExpense", mock.Anything, callerIs(1), req).Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/expenses", req, suite.tokenFor(ana()))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to add expense", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestListExpenses_Filter() {
	filter := domain.ExpenseFilter{Year: 2024, Month: 3}
	expenses := []domain.Expense{
		{ExpenseID: 9, AccountID: 2, Title: "Bus", Amount: 3000, Category: domain.CategoryTransport, Date: "2024-03-12", Attribution: domain.AttributionSelf},
		{ExpenseID: 8, AccountID: 1, Title: "Rent", Amount: 500000, Category: domain.CategoryBills, Date: "2024-03-01", Attribution: domain.AttributionSelf},
	}
	suite.ledgerService.On("ListExpenses", mock.Anything, callerIs(1), filter).Return(expenses, nil).Once()

	w := suite.do(http.MethodGet, "/api/expenses?year=2024&month=3", nil, suite.tokenFor(ana()))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []dto.ExpenseResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal(int64(9), resp[0].ID)
	suite.Equal(int64(8), resp[1].ID)
}

func (suite *HandlerTestSuite) TestListExpenses_EmptyIsArray() {
	suite.ledgerService.On("ListExpenses", mock.Anything, callerIs(1), domain.ExpenseFilter{}).Return([]domain.Expense{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/expenses", nil, suite.tokenFor(ana()))

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *HandlerTestSuite) TestListExpenses_InvalidQuery() {
	w := suite.do(http.MethodGet, "/api/expenses?year=2024&month=13", nil, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/expenses?from=yesterday", nil, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestEditExpense_Success() {
	req := groceries()
	req.Attribution = domain.AttributionSpouse
	suite.ledgerService.On("EditExpense", mock.Anything, callerIs(1), int64(5), req).
		Return(&domain.Expense{ExpenseID: 5, AccountID: 2, Title: req.Title, Amount: req.Amount, Attribution: req.Attribution}, nil).Once()

	w := suite.do(http.MethodPut, "/api/expenses/5", req, suite.tokenFor(ana()))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ExpenseResponse
	suite.decode(w, &resp)
	suite.Equal(int64(2), resp.AccountID)
}

func (suite *HandlerTestSuite) TestEditExpense_Errors() {
	req := groceries()
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("load expense 5: %w: expense not found", apperrors.ErrNotFound), http.StatusNotFound},
		{"other household", fmt.Errorf("%w: expense 5 belongs to another household", apperrors.ErrForbidden), http.StatusForbidden},
		{"shared on edit", fmt.Errorf("%w: shared is not a valid target when editing an expense", apperrors.ErrInvalidAttribution), http.StatusBadRequest},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.ledgerService.On("EditExpense", mock.Anything, callerIs(1), int64(5), req).Return(nil, tc.err).Once()
			w := suite.do(http.MethodPut, "/api/expenses/5", req, suite.tokenFor(ana()))
			suite.Equal(tc.status, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestEditExpense_InvalidID() {
	w := suite.do(http.MethodPut, "/api/expenses/abc", groceries(), suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid expense ID", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestDeleteExpense() {
	suite.ledgerService.On("DeleteExpense", mock.Anything, callerIs(1), int64(5)).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/expenses/5", nil, suite.tokenFor(ana()))

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.MessageResponse
	suite.decode(w, &resp)
	suite.Equal("Expense deleted successfully", resp.Message)
}

func (suite *HandlerTestSuite) TestDeleteExpense_Forbidden() {
	err := fmt.Errorf("delete expense: %w: expense 5 belongs to another household", apperrors.ErrForbidden)
	suite.ledgerService.On("DeleteExpense", mock.Anything, callerIs(1), int64(5)).Return(err).Once()

	w := suite.do(http.MethodDelete, "/api/expenses/5", nil, suite.tokenFor(ana()))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("expense 5 belongs to another household", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestCloseMonth() {
	summary := &domain.CloseMonthSummary{MonthlyBudget: 1200000, BudgetPeriodStart: "2024-04-01", AccountIDs: []int64{1, 2}}
	suite.budgetService.On("CloseMonth", mock.Anything, callerIs(1), int64(1200000)).Return(summary, nil).Once()

	w := suite.do(http.MethodPost, "/api/budget/close-month", dto.CloseMonthRequest{NewMonthlyBudget: int64Ptr(1200000)}, suite.tokenFor(ana()))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.CloseMonthResponse
	suite.decode(w, &resp)
	suite.Equal([]int64{1, 2}, resp.AccountIDs)
	suite.Equal("2024-04-01", resp.BudgetPeriodStart)
}

func (suite *HandlerTestSuite) TestCloseMonth_RequiresBudget() {
	w := suite.do(http.MethodPost, "/api/budget/close-month", map[string]any{}, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/budget/close-month", map[string]any{"newMonthlyBudget": -1}, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)
}
