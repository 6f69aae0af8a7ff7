package handler

import (
	"errors"
	"net/http"

	"engistore/internal/dto"
	"engistore/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

func (h *ContentHandler) ListBlogs(c echo.Context) error {
	ctx := c.Request().Context()

	blogs, err := h.contentService.ListBlogs(ctx, false)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogs)
}

func (h *ContentHandler) GetBlog(c echo.Context) error {
	ctx := c.Request().Context()

	blog, err := h.contentService.GetBlogBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, blog)
}

func (h *ContentHandler) ListProjects(c echo.Context) error {
	ctx := c.Request().Context()

	projects, err := h.contentService.ListProjects(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

func (h *ContentHandler) GetProject(c echo.Context) error {
	ctx := c.Request().Context()

	project, err := h.contentService.GetProjectBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) AdminListBlogs(c echo.Context) error {
	ctx := c.Request().Context()

	blogs, err := h.contentService.ListBlogs(ctx, true)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blogs)
}

func (h *ContentHandler) CreateBlog(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindBlogRequest(c)
	if err != nil {
		return err
	}

	blog, err := h.contentService.CreateBlog(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, blog)
}

func (h *ContentHandler) UpdateBlog(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := bindBlogRequest(c)
	if err != nil {
		return err
	}

	blog, err := h.contentService.UpdateBlog(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, blog)
}

func (h *ContentHandler) DeleteBlog(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.contentService.DeleteBlog(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ContentHandler) CreateProject(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindProjectRequest(c)
	if err != nil {
		return err
	}

	project, err := h.contentService.CreateProject(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *ContentHandler) UpdateProject(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := bindProjectRequest(c)
	if err != nil {
		return err
	}

	project, err := h.contentService.UpdateProject(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) DeleteProject(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.contentService.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func bindBlogRequest(c echo.Context) (*dto.BlogRequest, error) {
	var req dto.BlogRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("title", req.Title)
	errs.require("content", req.Content)
	if err := errs.toHTTPError(); err != nil {
		return nil, err
	}

	return &req, nil
}

func bindProjectRequest(c echo.Context) (*dto.ProjectRequest, error) {
	var req dto.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("title", req.Title)
	if err := errs.toHTTPError(); err != nil {
		return nil, err
	}

	return &req, nil
}
