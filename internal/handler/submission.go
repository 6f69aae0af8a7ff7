package handler

import (
	"errors"
	"net/http"

	"engistore/internal/dto"
	"engistore/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type SubmissionHandler struct {
	submissionService service.SubmissionService
}

func NewSubmissionHandler(submissionService service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) CreateQuoteRequest(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.QuoteRequestInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("name", req.Name)
	errs.requireEmail("email", req.Email)
	errs.require("project_description", req.ProjectDescription)
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	quote, err := h.submissionService.CreateQuoteRequest(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":       "Quote request submitted successfully!",
		"quote_request": quote,
	})
}

func (h *SubmissionHandler) CreateContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("name", req.Name)
	errs.requireEmail("email", req.Email)
	errs.require("message", req.Message)
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	submission, err := h.submissionService.CreateContactSubmission(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Thank you for contacting us!",
		"submission": submission,
	})
}

func (h *SubmissionHandler) SubscribeNewsletter(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.NewsletterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.requireEmail("email", req.Email)
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	if err := h.submissionService.SubscribeNewsletter(ctx, req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Subscribed"})
}

func (h *SubmissionHandler) AdminListQuoteRequests(c echo.Context) error {
	ctx := c.Request().Context()

	quotes, err := h.submissionService.ListQuoteRequests(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quotes)
}

func (h *SubmissionHandler) AdminUpdateQuoteStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuoteStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("status", req.Status)
	if err := errs.toHTTPError(); err != nil {
		return err
	}

	if err := h.submissionService.UpdateQuoteStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *SubmissionHandler) AdminListContacts(c echo.Context) error {
	ctx := c.Request().Context()

	contacts, err := h.submissionService.ListContactSubmissions(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contacts)
}
