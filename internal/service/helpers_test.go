package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wbsimport/internal/db"
	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/repository"
	"github.com/alexanderramin/wbsimport/internal/testutil"
)

func setupRepos(t *testing.T) (*sql.DB, *repository.SQLiteScheduleRepo, *repository.SQLiteWBSRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteScheduleRepo(database), repository.NewSQLiteWBSRepo(database)
}

// reposOn builds both stores on a wrapped connection.
func reposOn(conn db.DBTX) (*repository.SQLiteScheduleRepo, *repository.SQLiteWBSRepo) {
	return repository.NewSQLiteScheduleRepo(conn), repository.NewSQLiteWBSRepo(conn)
}

// nodesByCode loads every node of a schedule keyed by code.
func nodesByCode(t *testing.T, nodes repository.WBSRepo, scheduleID int64) map[string]*domain.WBS {
	t.Helper()
	list, err := nodes.ListBySchedule(context.Background(), scheduleID)
	require.NoError(t, err)
	out := make(map[string]*domain.WBS, len(list))
	for _, n := range list {
		out[n.Code] = n
	}
	return out
}

func scheduleOf(t *testing.T, schedules repository.ScheduleRepo, res ProjectResult) *domain.Schedule {
	t.Helper()
	require.NotEmpty(t, res.ScheduleID)
	sch, err := schedules.GetByPublicID(context.Background(), res.ScheduleID)
	require.NoError(t, err)
	return sch
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.events = append(o.events, event)
}

// failingFindWBSRepo fails every duplicate lookup.
type failingFindWBSRepo struct {
	repository.WBSRepo
	err error
}

func (r failingFindWBSRepo) Find(context.Context, string, int64) (*domain.WBS, error) {
	return nil, r.err
}
