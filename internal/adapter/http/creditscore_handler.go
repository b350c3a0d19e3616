package http

import (
	"net/http"

	"loanbook-api/internal/usecase/creditscore"

	"github.com/labstack/echo/v4"
)

type CreditScoreHandler struct{ gen *creditscore.Generator }

func NewCreditScoreHandler(gen *creditscore.Generator) *CreditScoreHandler {
	return &CreditScoreHandler{gen: gen}
}

func (h *CreditScoreHandler) GetScore(c echo.Context) error {
	return c.JSON(http.StatusOK, h.gen.Generate())
}
