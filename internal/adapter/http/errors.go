package http

import (
	"errors"
	"net/http"

	"loanbook-api/internal/domain/loan"
	"loanbook-api/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	msgValidation   = "Validation error"
	msgServerError  = "Server error"
	msgUserNotFound = "User not found"
	msgUserMissing  = "This user id doesn't exist"
	msgLoanNotFound = "Loan not found"
)

func fail(c echo.Context, code int, msg string, details ...FieldError) error {
	return c.JSON(code, ErrorResponse{Error: msg, Details: details})
}

func validationFailed(c echo.Context, err error) error {
	return fail(c, http.StatusBadRequest, msgValidation, ToFieldErrors(err)...)
}

// unexpected logs err and answers with code, exposing the raw error as
// a "_" detail.
func unexpected(c echo.Context, code int, msg string, err error) error {
	log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg(msg)
	return fail(c, code, msg, ToFieldErrors(err)...)
}

// The user routes answer storage faults with 400, the loan routes with 500.

func userError(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, user.ErrAlreadyExists):
		return fail(c, http.StatusNotAcceptable, "User already exists")
	case errors.Is(err, user.ErrInvalidID):
		return fail(c, http.StatusBadRequest, "Invalid user id")
	case errors.Is(err, user.ErrNotFound):
		return fail(c, http.StatusBadRequest, notFoundMsg)
	case errors.Is(err, user.ErrHasLoans):
		return fail(c, http.StatusConflict, "User has loan bookings")
	case errors.Is(err, user.ErrEmptyPatch):
		return validationFailed(c, err)
	case errors.Is(err, user.ErrNotRegistered):
		return fail(c, http.StatusUnauthorized, "User not registered")
	case errors.Is(err, user.ErrWrongPassword):
		return fail(c, http.StatusUnauthorized, "Wrong Password")
	default:
		return unexpected(c, http.StatusBadRequest, "Request failed", err)
	}
}

func loanError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrBorrowerNotFound):
		return fail(c, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, loan.ErrNotFound):
		return fail(c, http.StatusNotFound, msgLoanNotFound)
	case errors.Is(err, loan.ErrInvalidTenure):
		return fail(c, http.StatusBadRequest, "Tenure must be greater than zero")
	case errors.Is(err, loan.ErrInvalidLoanType):
		return fail(c, http.StatusBadRequest, msgValidation, FieldError{Field: "loanType", Message: err.Error()})
	case errors.Is(err, loan.ErrInvalidAmount):
		return fail(c, http.StatusBadRequest, msgValidation, FieldError{Field: "loanAmount", Message: err.Error()})
	case errors.Is(err, loan.ErrMissingStatus):
		return fail(c, http.StatusBadRequest, msgValidation, FieldError{Field: "loanStatus", Message: "is required"})
	default:
		return unexpected(c, http.StatusInternalServerError, msgServerError, err)
	}
}
