package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/repository"
	"github.com/alexanderramin/wbsimport/internal/service"
	"github.com/alexanderramin/wbsimport/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	schedules := repository.NewSQLiteScheduleRepo(db)
	nodes := repository.NewSQLiteWBSRepo(db)

	return &App{
		Import:    service.NewImportService(schedules, nodes),
		Schedules: service.NewScheduleService(schedules, nodes),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeSource(t *testing.T, src *importer.Source) string {
	t.Helper()
	data, err := json.Marshal(src)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tower.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func onlySchedule(t *testing.T, app *App) string {
	t.Helper()
	list, err := app.Schedules.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	return list[0].PublicID
}

func TestImportCmd(t *testing.T) {
	app := testApp(t)
	path := writeSource(t, testutil.NewSource(testutil.TowerA()))

	out, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "TOWER A")
	assert.Contains(t, out, "created 3")
	assert.Contains(t, out, onlySchedule(t, app))
}

func TestImportCmd_Into(t *testing.T) {
	app := testApp(t)
	path := writeSource(t, testutil.NewSource(testutil.TowerA()))

	_, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	id := onlySchedule(t, app)

	out, err := executeCmd(t, app, "import", path, "--into", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "created 0")
	assert.Contains(t, out, "skipped 3")
	assert.Contains(t, out, "(existing)")
	assert.Equal(t, id, onlySchedule(t, app))
}

func TestImportCmd_Errors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "import")
	require.Error(t, err)

	_, err = executeCmd(t, app, "import", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := writeSource(t, testutil.NewSource(testutil.TowerA()))
	_, err = executeCmd(t, app, "import", path, "--into", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule not found")
}

func TestScheduleCmds(t *testing.T) {
	app := testApp(t)
	path := writeSource(t, testutil.NewSource(testutil.TowerA()))
	_, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)
	id := onlySchedule(t, app)

	out, err := executeCmd(t, app, "schedule", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Tower A")

	out, err = executeCmd(t, app, "schedule", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "TOWER A")
	assert.Contains(t, out, "3")

	_, err = executeCmd(t, app, "schedule", "show", "nope")
	require.Error(t, err)
}

func TestWBSTreeCmd(t *testing.T) {
	app := testApp(t)
	path := writeSource(t, testutil.NewSource(testutil.TowerA()))
	_, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)

	out, err := executeCmd(t, app, "wbs", "tree", onlySchedule(t, app))
	require.NoError(t, err)
	assert.Contains(t, out, "A Root")
	assert.Contains(t, out, "└─ A.1 Sub")
	assert.Contains(t, out, "└─ A.1.1 Leaf")
}

// stubSchedules serves a fixed list and never finds an exact id.
type stubSchedules struct {
	service.ScheduleService
	list []*domain.Schedule
}

func (s stubSchedules) GetByPublicID(context.Context, string) (*domain.Schedule, error) {
	return nil, errors.Wrap(repository.ErrNotFound, "schedule")
}

func (s stubSchedules) List(context.Context, bool) ([]*domain.Schedule, error) {
	return s.list, nil
}

func TestResolveScheduleID(t *testing.T) {
	app := &App{Schedules: stubSchedules{list: []*domain.Schedule{
		{PublicID: "abc-111"},
		{PublicID: "abc-222"},
		{PublicID: "def-333"},
	}}}
	ctx := context.Background()

	id, err := resolveScheduleID(ctx, app, "def")
	require.NoError(t, err)
	assert.Equal(t, "def-333", id)

	_, err = resolveScheduleID(ctx, app, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveScheduleID(ctx, app, "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = resolveScheduleID(ctx, app, "")
	require.Error(t, err)
}

func TestServeCmd_OnlyWhenConfigured(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "serve")
	require.Error(t, err)

	called := false
	app.Serve = func(ctx context.Context) error {
		called = true
		return nil
	}
	_, err = executeCmd(t, app, "serve")
	require.NoError(t, err)
	assert.True(t, called)
}
