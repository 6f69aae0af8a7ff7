package handler

import (
	"errors"
	"net/http"

	"engistore/internal/dto"
	"engistore/internal/middleware"
	"engistore/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("first_name", req.FirstName)
	errs.require("last_name", req.LastName)
	errs.requireEmail("email", req.Email)
	if len(req.Password) < 8 {
		errs["password"] = "must be at least 8 characters"
	}
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	resp, err := h.authService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		}
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.requireEmail("email", req.Email)
	errs.require("password", req.Password)
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.authService.Profile(ctx, middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, user)
}
