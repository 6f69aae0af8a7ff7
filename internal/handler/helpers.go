package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// fieldErrors collects validation failures keyed by field name and surfaces
// them as a 400 with the standard envelope.
type fieldErrors map[string]string

func (e fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = "required"
	}
}

func (e fieldErrors) requireEmail(field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = "required"
		return
	}
	if !strings.Contains(value, "@") || strings.HasPrefix(value, "@") || strings.HasSuffix(value, "@") {
		e[field] = "must be a valid email address"
	}
}

func (e fieldErrors) toHTTPError() error {
	if len(e) == 0 {
		return nil
	}
	return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
		"message": "validation failed",
		"errors":  e,
	})
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
