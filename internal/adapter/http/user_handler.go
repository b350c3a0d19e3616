package http

import (
	"net/http"

	"loanbook-api/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

// max lengths follow the users column sizes.
type registerReq struct {
	Name       string   `json:"name" validate:"required,min=2,max=255"`
	Email      string   `json:"email" validate:"required,email,max=255"`
	AadhaarNum int64    `json:"aadharNum" validate:"required,aadhaar"`
	MobileNum  int64    `json:"mobileNum" validate:"required,mobile10"`
	PanNum     string   `json:"panNum" validate:"required,max=32"`
	Address    string   `json:"address" validate:"required"`
	Password   string   `json:"password" validate:"required,max=72"`
	Gender     string   `json:"gender" validate:"required,max=32"`
	Salary     *float64 `json:"salary" validate:"required,gte=0"`
	IsKyc      bool     `json:"isKyc"`
}

// Fields outside this set (aadharNum, id, timestamps) are ignored.
type updateUserReq struct {
	Name      *string  `json:"name" validate:"omitempty,min=2,max=255"`
	Email     *string  `json:"email" validate:"omitempty,email,max=255"`
	MobileNum *int64   `json:"mobileNum" validate:"omitempty,mobile10"`
	PanNum    *string  `json:"panNum" validate:"omitempty,min=1,max=32"`
	Address   *string  `json:"address" validate:"omitempty,min=1"`
	Gender    *string  `json:"gender" validate:"omitempty,min=1,max=32"`
	Salary    *float64 `json:"salary" validate:"omitempty,gte=0"`
	IsKyc     *bool    `json:"isKyc"`
	Password  *string  `json:"password" validate:"omitempty,min=1,max=72"`
}

// An out-of-range aadharNum is simply not registered.
type loginReq struct {
	AadhaarNum int64  `json:"aadharNum" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	userID, err := h.uc.Register(c.Request().Context(), user.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		AadhaarNum: req.AadhaarNum,
		MobileNum:  req.MobileNum,
		PanNum:     req.PanNum,
		Address:    req.Address,
		Password:   req.Password,
		Gender:     req.Gender,
		Salary:     *req.Salary,
		IsKyc:      req.IsKyc,
	})
	if err != nil {
		return userError(c, err, msgUserNotFound)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User Successfully Registered",
		"id":      userID,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return unexpected(c, http.StatusBadRequest, "Error fetching users", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return userError(c, err, msgUserNotFound)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	err := h.uc.Update(c.Request().Context(), c.Param("id"), user.UpdateInput{
		Name:      req.Name,
		Email:     req.Email,
		MobileNum: req.MobileNum,
		PanNum:    req.PanNum,
		Address:   req.Address,
		Gender:    req.Gender,
		Salary:    req.Salary,
		IsKyc:     req.IsKyc,
		Password:  req.Password,
	})
	if err != nil {
		return userError(c, err, msgUserMissing)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account got updated"})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return userError(c, err, msgUserMissing)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Account deleted",
	})
}

// Login verifies credentials only; no token or cookie is issued.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	if err := h.uc.Authenticate(c.Request().Context(), req.AadhaarNum, req.Password); err != nil {
		return userError(c, err, msgUserNotFound)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User logged in successfully"})
}
