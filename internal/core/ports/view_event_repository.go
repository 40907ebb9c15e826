package ports

import (
	"context"

	"github.com/localspot/directory-api/internal/core/domain"
)

// ViewEventRepository persists view events to the audit collection.
type ViewEventRepository interface {
	Insert(ctx context.Context, event *domain.ViewEvent) error
}
