package repository

import (
	"context"

	"engistore/internal/model"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) error
	Update(ctx context.Context, blog *model.Blog) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*model.Blog, error)
	ListPublished(ctx context.Context) ([]*model.Blog, error)
	ListAll(ctx context.Context) ([]*model.Blog, error)
}

type blogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepoImpl{
		db: db,
	}
}

func (r *blogRepoImpl) Create(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepoImpl) Update(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Save(blog).Error
}

func (r *blogRepoImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Blog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepoImpl) FindByID(ctx context.Context, id uint) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&blog).Error
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	var blog model.Blog
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ? AND published = ?", slug, true).
		First(&blog).Error
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

func (r *blogRepoImpl) ListPublished(ctx context.Context) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *blogRepoImpl) ListAll(ctx context.Context) ([]*model.Blog, error) {
	var blogs []*model.Blog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}

	return blogs, nil
}
