package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

type recordingViewEventRepo struct {
	events []*domain.ViewEvent
	err    error
}

func (r *recordingViewEventRepo) Insert(_ context.Context, event *domain.ViewEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func TestViewEventService_Process(t *testing.T) {
	repo := &recordingViewEventRepo{}
	svc := NewViewEventService(repo, zerolog.Nop())

	viewedAt := time.Now().UTC()
	err := svc.Process(context.Background(), ports.ViewEventInput{
		BusinessID: "biz-1",
		Category:   string(domain.CategoryRestaurant),
		ViewedAt:   viewedAt,
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	if repo.events[0].BusinessID != "biz-1" || !repo.events[0].ViewedAt.Equal(viewedAt) {
		t.Fatalf("unexpected event %+v", repo.events[0])
	}
}

func TestViewEventService_Process_RepoError(t *testing.T) {
	cause := errors.New("collection unavailable")
	svc := NewViewEventService(&recordingViewEventRepo{err: cause}, zerolog.Nop())

	err := svc.Process(context.Background(), ports.ViewEventInput{BusinessID: "biz-1"})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}
