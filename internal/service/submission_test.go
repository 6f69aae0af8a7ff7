package service

import (
	"context"
	"testing"

	"engistore/internal/dto"
	"engistore/internal/model"
	"engistore/internal/queue"
	"engistore/internal/repository"

	"go.uber.org/zap/zaptest"
)

func newSubmissionServiceForTest(t *testing.T) (SubmissionService, *recordingPublisher) {
	t.Helper()

	db := newTestDB(t)
	pub := &recordingPublisher{}
	svc := NewSubmissionService(
		repository.NewQuoteRequestRepository(db),
		repository.NewContactRepository(db),
		repository.NewNewsletterRepository(db),
		pub,
		zaptest.NewLogger(t),
	)
	return svc, pub
}

func TestCreateQuoteRequestPublishesEvent(t *testing.T) {
	svc, pub := newSubmissionServiceForTest(t)

	quote, err := svc.CreateQuoteRequest(context.Background(), &dto.QuoteRequestInput{
		Name:               "Ada Lovelace",
		Email:              "ada@example.com",
		ProjectDescription: "Pump sizing for a new plant",
	})
	if err != nil {
		t.Fatalf("CreateQuoteRequest: %v", err)
	}
	if quote.ID == 0 {
		t.Error("quote not persisted")
	}
	if quote.Status != "pending" {
		t.Errorf("status = %q, want pending", quote.Status)
	}

	if len(pub.notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(pub.notifications))
	}
	evt := pub.notifications[0]
	if evt.Type != queue.EventQuoteRequestCreated || evt.ID != quote.ID {
		t.Errorf("event = %+v, want quote_request.created for %d", evt, quote.ID)
	}
}

func TestSubscribeNewsletterIdempotent(t *testing.T) {
	svc, pub := newSubmissionServiceForTest(t)
	ctx := context.Background()

	if err := svc.SubscribeNewsletter(ctx, "ada@example.com"); err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	// Subscribing the same address again is still an OK.
	if err := svc.SubscribeNewsletter(ctx, "ada@example.com"); err != nil {
		t.Fatalf("duplicate subscribe: %v", err)
	}

	if len(pub.notifications) != 2 {
		t.Errorf("notifications = %d, want 2", len(pub.notifications))
	}
	for _, evt := range pub.notifications {
		if evt.Type != queue.EventNewsletterSubscribed {
			t.Errorf("event type = %q, want newsletter.subscribed", evt.Type)
		}
	}
}

func TestNilPublisherDoesNotFailSubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewSubmissionService(
		repository.NewQuoteRequestRepository(db),
		repository.NewContactRepository(db),
		repository.NewNewsletterRepository(db),
		nil,
		zaptest.NewLogger(t),
	)

	submission, err := svc.CreateContactSubmission(context.Background(), &dto.ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("CreateContactSubmission: %v", err)
	}
	if submission.ID == 0 {
		t.Error("submission not persisted")
	}

	var count int64
	if err := db.Model(&model.ContactSubmission{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("stored submissions = %d, want 1", count)
	}
}
