package http

import (
	"time"

	"loanbook-api/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Base        *Handler
	Users       *UserHandler
	Loans       *LoanHandler
	CreditScore *CreditScoreHandler
}

// RegisterRoutes mounts the API. delay is applied to the /register/user(s)
// routes and to /login.
func RegisterRoutes(e *echo.Echo, h Handlers, delay time.Duration) {
	slow := middleware.Delay(delay)

	e.GET("/", h.Base.Root)
	e.GET("/health", h.Base.Health)

	e.POST("/register", h.Users.Register)
	reg := e.Group("/register")
	reg.GET("/users", h.Users.ListUsers, slow)
	reg.GET("/user/:id", h.Users.GetUser, slow)
	reg.PATCH("/user/:id", h.Users.UpdateUser, slow)
	reg.DELETE("/user/:id", h.Users.DeleteUser, slow)

	e.POST("/login", h.Users.Login, slow)

	e.GET("/cibil-score", h.CreditScore.GetScore)

	loans := e.Group("/loans")
	loans.POST("/create", h.Loans.CreateLoan)
	loans.GET("", h.Loans.ListLoans)
	loans.GET("/:id", h.Loans.GetLoan)
	loans.PUT("/:id/update", h.Loans.UpdateLoanStatus)
	loans.DELETE("/:id/delete", h.Loans.DeleteLoan)
}
