package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

type viewEventService struct {
	repo ports.ViewEventRepository
	log  zerolog.Logger
}

// NewViewEventService returns the worker-side processor for the view audit
// trail. Every event is recorded; repeat views by the same caller are not
// deduplicated on purpose.
func NewViewEventService(repo ports.ViewEventRepository, log zerolog.Logger) ports.ViewEventService {
	return &viewEventService{repo: repo, log: log}
}

func (s *viewEventService) Process(ctx context.Context, in ports.ViewEventInput) error {
	event := &domain.ViewEvent{
		BusinessID: in.BusinessID,
		Category:   domain.Category(in.Category),
		ViewedAt:   in.ViewedAt,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record view event: %w", err)
	}

	s.log.Debug().Str("business_id", in.BusinessID).Msg("view event recorded")
	return nil
}
