package service

import (
	"context"
	"io"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/importer"
)

// NodeError is a failure recorded against one project or WBS entry. Code is
// empty when the failure concerns the whole project.
type NodeError struct {
	Code   string
	Reason string
	Err    error
}

// ProjectResult is the outcome of importing one source project.
type ProjectResult struct {
	Project string
	// ScheduleID is the public id of the schedule the nodes were attached to;
	// empty when no schedule was available.
	ScheduleID      string
	ScheduleCreated bool
	NodesCreated    int
	NodesSkipped    int
	Errors          []NodeError
	// Conflicts lists the codes skipped as DuplicateNodeConflict.
	Conflicts []string
}

func (r *ProjectResult) addError(code string, err error) {
	r.Errors = append(r.Errors, NodeError{Code: code, Reason: err.Error(), Err: err})
}

// ImportResult holds one ProjectResult per source project, in source order.
type ImportResult struct {
	Projects []ProjectResult
}

// Totals sums created and skipped nodes and errors across all projects.
func (r *ImportResult) Totals() (created, skipped, failed int) {
	for _, p := range r.Projects {
		created += p.NodesCreated
		skipped += p.NodesSkipped
		failed += len(p.Errors)
	}
	return created, skipped, failed
}

type ImportService interface {
	ImportSource(ctx context.Context, src *importer.Source) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	// ImportIntoSchedule attaches every project's WBS entries to an existing
	// schedule instead of creating new ones.
	ImportIntoSchedule(ctx context.Context, schedulePublicID string, src *importer.Source) (*ImportResult, error)
}

// UploadResult is returned by UploadService.Upload.
type UploadResult struct {
	FileID   string
	Projects []ProjectResult
}

type UploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error)
}

// WBSTreeNode is a persisted WBS node with its children in insertion order.
type WBSTreeNode struct {
	Node     *domain.WBS
	Children []*WBSTreeNode
}

type ScheduleService interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.Schedule, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error)
	Tree(ctx context.Context, schedulePublicID string) (*domain.Schedule, []*WBSTreeNode, error)
}
