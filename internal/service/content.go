package service

import (
	"context"
	"fmt"

	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/repository"
)

type ContentService interface {
	ListBlogs(ctx context.Context, includeUnpublished bool) ([]*model.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error)
	CreateBlog(ctx context.Context, req *dto.BlogRequest) (*model.Blog, error)
	UpdateBlog(ctx context.Context, id uint, req *dto.BlogRequest) (*model.Blog, error)
	DeleteBlog(ctx context.Context, id uint) error

	ListProjects(ctx context.Context) ([]*model.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error)
	CreateProject(ctx context.Context, req *dto.ProjectRequest) (*model.Project, error)
	UpdateProject(ctx context.Context, id uint, req *dto.ProjectRequest) (*model.Project, error)
	DeleteProject(ctx context.Context, id uint) error
}

type contentServiceImpl struct {
	blogRepo    repository.BlogRepository
	projectRepo repository.ProjectRepository
}

func NewContentService(blogRepo repository.BlogRepository, projectRepo repository.ProjectRepository) ContentService {
	return &contentServiceImpl{
		blogRepo:    blogRepo,
		projectRepo: projectRepo,
	}
}

func (s *contentServiceImpl) ListBlogs(ctx context.Context, includeUnpublished bool) ([]*model.Blog, error) {
	if includeUnpublished {
		return s.blogRepo.ListAll(ctx)
	}
	return s.blogRepo.ListPublished(ctx)
}

func (s *contentServiceImpl) GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	return s.blogRepo.FindBySlug(ctx, slug)
}

func (s *contentServiceImpl) CreateBlog(ctx context.Context, req *dto.BlogRequest) (*model.Blog, error) {
	blog := blogFromRequest(req)
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	return blog, nil
}

func (s *contentServiceImpl) UpdateBlog(ctx context.Context, id uint, req *dto.BlogRequest) (*model.Blog, error) {
	existing, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := blogFromRequest(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.blogRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}

	return updated, nil
}

func (s *contentServiceImpl) DeleteBlog(ctx context.Context, id uint) error {
	return s.blogRepo.Delete(ctx, id)
}

func (s *contentServiceImpl) ListProjects(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *contentServiceImpl) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.projectRepo.FindBySlug(ctx, slug)
}

func (s *contentServiceImpl) CreateProject(ctx context.Context, req *dto.ProjectRequest) (*model.Project, error) {
	project := projectFromRequest(req)
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

func (s *contentServiceImpl) UpdateProject(ctx context.Context, id uint, req *dto.ProjectRequest) (*model.Project, error) {
	existing, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := projectFromRequest(req)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := s.projectRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return updated, nil
}

func (s *contentServiceImpl) DeleteProject(ctx context.Context, id uint) error {
	return s.projectRepo.Delete(ctx, id)
}

func blogFromRequest(req *dto.BlogRequest) *model.Blog {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	return &model.Blog{
		Title:      req.Title,
		Slug:       slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Published:  req.Published,
	}
}

func projectFromRequest(req *dto.ProjectRequest) *model.Project {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	return &model.Project{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		ClientName:  req.ClientName,
		Status:      req.Status,
	}
}
