package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/db"
	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/hierarchy"
	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/repository"
)

// ImportOption configures the import service.
type ImportOption func(*importService)

// WithResolverFactory sets how a fresh hierarchy resolver is built for each
// project. Defaults to hierarchy.ModeForward.
func WithResolverFactory(f hierarchy.Factory) ImportOption {
	return func(s *importService) {
		if f != nil {
			s.newResolver = f
		}
	}
}

// WithSchedulePolicy selects how projects map onto schedules. The
// find-or-create policy runs its lookup and insert inside uow.
func WithSchedulePolicy(policy domain.SchedulePolicy, uow db.UnitOfWork) ImportOption {
	return func(s *importService) {
		s.policy = policy
		s.uow = uow
	}
}

func WithObserver(o UseCaseObserver) ImportOption {
	return func(s *importService) {
		s.observer = useCaseObserverOrNoop([]UseCaseObserver{o})
	}
}

func WithRegistry(r *importer.Registry) ImportOption {
	return func(s *importService) {
		if r != nil {
			s.registry = r
		}
	}
}

type importService struct {
	schedules   repository.ScheduleRepo
	nodes       repository.WBSRepo
	newResolver hierarchy.Factory
	policy      domain.SchedulePolicy
	uow         db.UnitOfWork
	registry    *importer.Registry
	observer    UseCaseObserver
}

func NewImportService(schedules repository.ScheduleRepo, nodes repository.WBSRepo, opts ...ImportOption) ImportService {
	s := &importService{
		schedules:   schedules,
		nodes:       nodes,
		newResolver: func() hierarchy.Resolver { return hierarchy.NewForward() },
		policy:      domain.PolicyAlwaysCreate,
		registry:    importer.NewRegistry(),
		observer:    NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	src, err := s.registry.ParseFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading import file")
	}
	return s.ImportSource(ctx, src)
}

func (s *importService) ImportSource(ctx context.Context, src *importer.Source) (*ImportResult, error) {
	if src == nil {
		return nil, errors.New("import source is nil")
	}
	return s.run(ctx, "import_source", src, func(ctx context.Context, p importer.Project, res *ProjectResult) {
		sch, created, err := s.scheduleFor(ctx, p.ShortName)
		if err != nil {
			res.addError("", &PersistenceError{Op: "create schedule", Code: p.ShortName, Err: err})
			recordProject("schedule_failed")
			return
		}
		res.ScheduleID = sch.PublicID
		res.ScheduleCreated = created
		if created {
			recordScheduleCreated()
		}
		s.importEntries(ctx, sch, p.WBS, res)
		recordProject("imported")
	})
}

func (s *importService) ImportIntoSchedule(ctx context.Context, schedulePublicID string, src *importer.Source) (*ImportResult, error) {
	if src == nil {
		return nil, errors.New("import source is nil")
	}
	sch, err := s.schedules.GetByPublicID(ctx, schedulePublicID)
	if err != nil {
		return nil, errors.Wrapf(err, "loading schedule %s", schedulePublicID)
	}
	return s.run(ctx, "import_into_schedule", src, func(ctx context.Context, p importer.Project, res *ProjectResult) {
		res.ScheduleID = sch.PublicID
		s.importEntries(ctx, sch, p.WBS, res)
		recordProject("imported")
	})
}

// run validates each project and hands the valid ones to importProject. A
// failing project never stops the ones after it.
func (s *importService) run(
	ctx context.Context,
	useCase string,
	src *importer.Source,
	importProject func(ctx context.Context, p importer.Project, res *ProjectResult),
) (*ImportResult, error) {
	startedAt := time.Now()
	result := &ImportResult{Projects: make([]ProjectResult, 0, len(src.Projects))}

	for i := range src.Projects {
		p := src.Projects[i]
		res := ProjectResult{Project: p.ShortName}
		if problems := importer.ValidateProject(&p); len(problems) > 0 {
			res.addError("", &MalformedInputError{Project: p.ShortName, Problems: problems})
			recordProject("malformed")
		} else {
			importProject(ctx, p, &res)
		}
		result.Projects = append(result.Projects, res)
	}

	duration := time.Since(startedAt)
	observeImportDuration(duration)
	created, skipped, failed := result.Totals()
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      useCase,
		StartedAt: startedAt,
		Duration:  duration,
		Success:   failed == 0,
		Fields: map[string]any{
			"projects":      len(src.Projects),
			"nodes_created": created,
			"nodes_skipped": skipped,
			"errors":        failed,
		},
	})
	return result, nil
}

func (s *importService) scheduleFor(ctx context.Context, title string) (*domain.Schedule, bool, error) {
	if s.policy != domain.PolicyFindOrCreateByTitle || s.uow == nil {
		sch, err := s.schedules.Create(ctx, title)
		return sch, err == nil, err
	}

	var (
		sch     *domain.Schedule
		created bool
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		existing, err := txSchedules.FindActiveByTitle(ctx, title)
		if err == nil {
			sch = existing
			return nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		sch, err = txSchedules.Create(ctx, title)
		created = err == nil
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return sch, created, nil
}

// importEntries persists entries under sch in the resolver's order. Each node
// commits on its own; a failed node is recorded and the loop moves on.
func (s *importService) importEntries(ctx context.Context, sch *domain.Schedule, entries []importer.WBSEntry, res *ProjectResult) {
	resolver := s.newResolver()

	for _, entry := range resolver.Order(entries) {
		existing, err := s.nodes.Find(ctx, entry.Code, sch.ID)
		if err == nil {
			res.NodesSkipped++
			res.Conflicts = append(res.Conflicts, entry.Code)
			resolver.Record(entry.ID, existing)
			recordNode(DuplicateNodeConflict)
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			res.addError(entry.Code, &PersistenceError{Op: "find wbs", Code: entry.Code, Err: err})
			recordNode(domain.OutcomeFailed)
			continue
		}

		parentID := resolver.ResolveParent(entry.ParentID)
		node, err := s.nodes.Create(ctx, entry.Code, entry.Name, sch.ID, parentID)
		if err != nil {
			res.addError(entry.Code, &PersistenceError{Op: "create wbs", Code: entry.Code, Err: err})
			recordNode(domain.OutcomeFailed)
			continue
		}
		resolver.Record(entry.ID, node)
		res.NodesCreated++
		recordNode(domain.OutcomeCreated)
	}
}
