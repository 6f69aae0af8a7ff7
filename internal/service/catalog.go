package service

import (
	"context"
	"fmt"

	"engistore/internal/cache"
	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/repository"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListProducts(ctx context.Context, opts repository.ProductListOptions) (*dto.ProductListResponse, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListCategories(ctx context.Context, categoryType string) ([]*model.Category, error)

	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type catalogServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.CatalogCache
	logger       *zap.Logger
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	catalogCache *cache.CatalogCache,
	logger *zap.Logger,
) CatalogService {
	return &catalogServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        catalogCache,
		logger:       logger,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, opts repository.ProductListOptions) (*dto.ProductListResponse, error) {
	products, total, err := s.productRepo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if opts.PerPage <= 0 {
		opts.PerPage = 20
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}

	return &dto.ProductListResponse{
		Products: products,
		Total:    total,
		Page:     opts.Page,
		PerPage:  opts.PerPage,
	}, nil
}

func (s *catalogServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	if product, ok := s.cache.GetProduct(ctx, slug); ok {
		return product, nil
	}

	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProduct(ctx, product); err != nil {
		s.logger.Warn("cache product", zap.String("slug", slug), zap.Error(err))
	}

	return product, nil
}

func (s *catalogServiceImpl) ListCategories(ctx context.Context, categoryType string) ([]*model.Category, error) {
	if categoryType == "" {
		categoryType = model.CategoryTypeProduct
	}
	return s.categoryRepo.ListByType(ctx, categoryType)
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	product := productFromRequest(req)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := existing.Slug

	updated := productFromRequest(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.productRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if err := s.cache.InvalidateProduct(ctx, oldSlug); err != nil {
		s.logger.Warn("invalidate product cache", zap.String("slug", oldSlug), zap.Error(err))
	}

	return updated, nil
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id uint) error {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.InvalidateProduct(ctx, existing.Slug); err != nil {
		s.logger.Warn("invalidate product cache", zap.String("slug", existing.Slug), zap.Error(err))
	}

	return nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error) {
	category := categoryFromRequest(req)
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, id uint, req *dto.CategoryRequest) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := categoryFromRequest(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.categoryRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	return updated, nil
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

func productFromRequest(req *dto.ProductRequest) *model.Product {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	return &model.Product{
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		Images:        req.Images,
		MetaTitle:     req.MetaTitle,
		MetaDesc:      req.MetaDesc,
		MetaKeywords:  req.MetaKeywords,
	}
}

func categoryFromRequest(req *dto.CategoryRequest) *model.Category {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	categoryType := req.Type
	if categoryType == "" {
		categoryType = model.CategoryTypeProduct
	}

	return &model.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Type:        categoryType,
	}
}
