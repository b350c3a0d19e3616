package http

import (
	"net/http"

	"loanbook-api/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// Field checks live in the usecase so that an unknown borrower is reported
// before a bad tenure or loan type.
type createLoanReq struct {
	BorrowerID   string  `json:"borrowerId"`
	LoanType     string  `json:"loanType"`
	LoanAmount   float64 `json:"loanAmount"`
	InterestRate float64 `json:"interestRate"`
	Tenure       float64 `json:"tenure"`
}

type updateStatusReq struct {
	LoanStatus string `json:"loanStatus"`
}

type loanResp struct {
	Message string        `json:"message"`
	Loan    *loan.LoanDTO `json:"loan,omitempty"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput(req))
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusCreated, loanResp{Message: "Loan booking created successfully", Loan: dto})
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.uc.List(c.Request().Context())
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) UpdateLoanStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), req.LoanStatus)
	if err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, loanResp{Message: "Loan status updated", Loan: dto})
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return loanError(c, err)
	}
	return c.JSON(http.StatusOK, loanResp{Message: "Loan booking deleted successfully"})
}
