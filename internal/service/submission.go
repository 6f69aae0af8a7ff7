package service

import (
	"context"
	"fmt"

	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/queue"
	"engistore/internal/repository"

	"go.uber.org/zap"
)

type SubmissionService interface {
	CreateQuoteRequest(ctx context.Context, req *dto.QuoteRequestInput) (*model.QuoteRequest, error)
	CreateContactSubmission(ctx context.Context, req *dto.ContactInput) (*model.ContactSubmission, error)
	SubscribeNewsletter(ctx context.Context, email string) error

	ListQuoteRequests(ctx context.Context) ([]*model.QuoteRequest, error)
	UpdateQuoteStatus(ctx context.Context, id uint, status string) error
	ListContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error)
}

type submissionServiceImpl struct {
	quoteRepo      repository.QuoteRequestRepository
	contactRepo    repository.ContactRepository
	newsletterRepo repository.NewsletterRepository
	publisher      queue.Publisher
	logger         *zap.Logger
}

func NewSubmissionService(
	quoteRepo repository.QuoteRequestRepository,
	contactRepo repository.ContactRepository,
	newsletterRepo repository.NewsletterRepository,
	publisher queue.Publisher,
	logger *zap.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		quoteRepo:      quoteRepo,
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *submissionServiceImpl) CreateQuoteRequest(ctx context.Context, req *dto.QuoteRequestInput) (*model.QuoteRequest, error) {
	quote := &model.QuoteRequest{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Company:            req.Company,
		ServiceOfInterest:  req.ServiceOfInterest,
		ProjectDescription: req.ProjectDescription,
		EstimatedBudget:    req.EstimatedBudget,
		Timeline:           req.Timeline,
		ProductServiceName: req.ProductServiceName,
		Status:             "pending",
	}
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}

	s.notify(ctx, queue.Event{Type: queue.EventQuoteRequestCreated, ID: quote.ID})

	return quote, nil
}

func (s *submissionServiceImpl) CreateContactSubmission(ctx context.Context, req *dto.ContactInput) (*model.ContactSubmission, error) {
	submission := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create contact submission: %w", err)
	}

	s.notify(ctx, queue.Event{Type: queue.EventContactCreated, ID: submission.ID})

	return submission, nil
}

func (s *submissionServiceImpl) SubscribeNewsletter(ctx context.Context, email string) error {
	if err := s.newsletterRepo.Subscribe(ctx, email); err != nil {
		return fmt.Errorf("subscribe newsletter: %w", err)
	}

	s.notify(ctx, queue.Event{Type: queue.EventNewsletterSubscribed})

	return nil
}

func (s *submissionServiceImpl) ListQuoteRequests(ctx context.Context) ([]*model.QuoteRequest, error) {
	return s.quoteRepo.List(ctx)
}

func (s *submissionServiceImpl) UpdateQuoteStatus(ctx context.Context, id uint, status string) error {
	return s.quoteRepo.UpdateStatus(ctx, id, status)
}

func (s *submissionServiceImpl) ListContactSubmissions(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.contactRepo.List(ctx)
}

// notify publishes an admin-notification event; a publish failure is logged
// and never surfaced to the submitter.
func (s *submissionServiceImpl) notify(ctx context.Context, evt queue.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotification(ctx, evt); err != nil {
		s.logger.Error("publish notification event",
			zap.String("event_type", evt.Type), zap.Error(err))
	}
}
