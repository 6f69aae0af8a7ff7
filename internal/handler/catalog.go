package handler

import (
	"errors"
	"net/http"
	"strconv"

	"engistore/internal/dto"
	"engistore/internal/repository"
	"engistore/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	opts := repository.ProductListOptions{
		Search: c.QueryParam("search"),
	}
	if categoryID, err := strconv.ParseUint(c.QueryParam("category_id"), 10, 64); err == nil {
		opts.CategoryID = uint(categoryID)
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		opts.Page = page
	}
	if perPage, err := strconv.Atoi(c.QueryParam("per_page")); err == nil {
		opts.PerPage = perPage
	}

	resp, err := h.catalogService.ListProducts(ctx, opts)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.ListCategories(ctx, c.QueryParam("type"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindProductRequest(c)
	if err != nil {
		return err
	}

	product, err := h.catalogService.CreateProduct(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := bindProductRequest(c)
	if err != nil {
		return err
	}

	product, err := h.catalogService.UpdateProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := bindCategoryRequest(c)
	if err != nil {
		return err
	}

	category, err := h.catalogService.CreateCategory(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}
	req, err := bindCategoryRequest(c)
	if err != nil {
		return err
	}

	category, err := h.catalogService.UpdateCategory(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.catalogService.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func bindProductRequest(c echo.Context) (*dto.ProductRequest, error) {
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("name", req.Name)
	if req.CategoryID == 0 {
		errs["category_id"] = "required"
	}
	if req.Price.IsNegative() {
		errs["price"] = "must not be negative"
	}
	if err := errs.toHTTPError(); err != nil {
		return nil, err
	}

	return &req, nil
}

func bindCategoryRequest(c echo.Context) (*dto.CategoryRequest, error) {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	errs := fieldErrors{}
	errs.require("name", req.Name)
	if err := errs.toHTTPError(); err != nil {
		return nil, err
	}

	return &req, nil
}
