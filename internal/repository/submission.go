package repository

import (
	"context"

	"engistore/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuoteRequestRepository interface {
	Create(ctx context.Context, quote *model.QuoteRequest) error
	FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error)
	List(ctx context.Context) ([]*model.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type quoteRequestRepoImpl struct {
	db *gorm.DB
}

func NewQuoteRequestRepository(db *gorm.DB) QuoteRequestRepository {
	return &quoteRequestRepoImpl{
		db: db,
	}
}

func (r *quoteRequestRepoImpl) Create(ctx context.Context, quote *model.QuoteRequest) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRequestRepoImpl) FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error) {
	var quote model.QuoteRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quote).Error
	if err != nil {
		return nil, err
	}

	return &quote, nil
}

func (r *quoteRequestRepoImpl) List(ctx context.Context) ([]*model.QuoteRequest, error) {
	var quotes []*model.QuoteRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}

	return quotes, nil
}

func (r *quoteRequestRepoImpl) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&model.QuoteRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

type ContactRepository interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
	FindByID(ctx context.Context, id uint) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}

type contactRepoImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepoImpl{
		db: db,
	}
}

func (r *contactRepoImpl) Create(ctx context.Context, submission *model.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *contactRepoImpl) FindByID(ctx context.Context, id uint) (*model.ContactSubmission, error) {
	var submission model.ContactSubmission
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&submission).Error
	if err != nil {
		return nil, err
	}

	return &submission, nil
}

func (r *contactRepoImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	var submissions []*model.ContactSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	return submissions, nil
}

type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) error
}

type newsletterRepoImpl struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepoImpl{
		db: db,
	}
}

// Subscribe is idempotent; an already-subscribed email is left untouched.
func (r *newsletterRepoImpl) Subscribe(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.NewsletterSubscription{Email: email}).Error
}
