package repository

import (
	"context"

	"github.com/alexanderramin/wbsimport/internal/domain"
)

type ScheduleRepo interface {
	Create(ctx context.Context, title string) (*domain.Schedule, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.Schedule, error)
	FindActiveByTitle(ctx context.Context, title string) (*domain.Schedule, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error)
}

type WBSRepo interface {
	// Find looks a node up by its (code, schedule) identity.
	Find(ctx context.Context, code string, scheduleID int64) (*domain.WBS, error)
	Create(ctx context.Context, code, name string, scheduleID int64, parentID *int64) (*domain.WBS, error)
	GetByPublicID(ctx context.Context, publicID string) (*domain.WBS, error)
	ListBySchedule(ctx context.Context, scheduleID int64) ([]*domain.WBS, error)
	ListChildren(ctx context.Context, parentID int64) ([]*domain.WBS, error)
}

type SourceFileRepo interface {
	Create(ctx context.Context, f *domain.SourceFile) error
	GetByPublicID(ctx context.Context, publicID string) (*domain.SourceFile, error)
}
