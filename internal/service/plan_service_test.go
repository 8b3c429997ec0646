package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/planview/internal/catalog"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/importer"
	"github.com/alexanderramin/planview/internal/repository"
	"github.com/alexanderramin/planview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func setupPlanService(t *testing.T, observers ...UseCaseObserver) (PlanService, repository.PlanRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	return NewPlanService(plans, testutil.NewTestUoW(database), observers...), plans
}

func validSchema(shortID string) *importer.ImportSchema {
	return &importer.ImportSchema{
		ShortID: shortID,
		Plan: domain.Plan{
			Title:      "Web Platform",
			Objectives: domain.Objectives{Specific: []string{"Ship"}},
			Timeline: []domain.TimelineWeek{
				{Week: 2, Title: "Build", Tasks: []string{"API"}, Progress: 40},
				{Week: 1, Title: "Setup", Tasks: []string{"Repo"}, Progress: 100},
			},
		},
	}
}

func writePlanFile(t *testing.T, name string, schema *importer.ImportSchema) string {
	t.Helper()
	format, err := importer.FormatForPath(name)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, importer.Encode(f, schema, format))
	return path
}

func TestResolve_Builtin(t *testing.T) {
	svc, _ := setupPlanService(t)
	ctx := context.Background()

	for _, ref := range []string{"", "builtin", "BUILTIN", "app01", " APP01 "} {
		plan, err := svc.Resolve(ctx, ref)
		require.NoError(t, err, "ref %q", ref)
		assert.True(t, plan.IsBuiltin())
		assert.Equal(t, *catalog.Default(), plan.Plan)
	}
}

func TestResolve_ShortIDThenUUID(t *testing.T) {
	svc, _ := setupPlanService(t)
	ctx := context.Background()

	stored, err := svc.ImportSchema(ctx, validSchema("web01"), "inline")
	require.NoError(t, err)
	assert.Equal(t, "WEB01", stored.ShortID)

	byShort, err := svc.Resolve(ctx, "Web01")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, byShort.ID)

	byID, err := svc.Resolve(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "WEB01", byID.ShortID)
	assert.False(t, byID.IsBuiltin())
}

func TestResolve_Unknown(t *testing.T) {
	svc, _ := setupPlanService(t)

	_, err := svc.Resolve(context.Background(), "NOPE01")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	assert.Contains(t, err.Error(), `"NOPE01"`)
}

func TestImport_FromFiles(t *testing.T) {
	for _, name := range []string{"plan.json", "plan.yaml", "plan.yml"} {
		t.Run(name, func(t *testing.T) {
			svc, _ := setupPlanService(t)
			ctx := context.Background()
			path := writePlanFile(t, name, validSchema("WEB01"))

			stored, err := svc.Import(ctx, path)
			require.NoError(t, err)
			assert.NotEmpty(t, stored.ID)
			assert.Equal(t, path, stored.Source)

			// Timeline is sorted on import.
			require.Len(t, stored.Plan.Timeline, 2)
			assert.Equal(t, 1, stored.Plan.Timeline[0].Week)
			assert.Equal(t, 2, stored.Plan.Timeline[1].Week)

			fetched, err := svc.Resolve(ctx, "WEB01")
			require.NoError(t, err)
			assert.Equal(t, stored.Plan, fetched.Plan)
		})
	}
}

func TestImport_ValidationErrorsJoined(t *testing.T) {
	svc, plans := setupPlanService(t)
	ctx := context.Background()

	schema := validSchema("WEB01")
	schema.Timeline[0].Progress = 120
	schema.Timeline[1].Week = 2

	_, err := svc.ImportSchema(ctx, schema, "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "timeline[0].progress: 120 out of range [0,100]")
	assert.Contains(t, err.Error(), "timeline[1].week: duplicate week 2")

	stored, err := plans.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestImport_DuplicateShortID(t *testing.T) {
	svc, _ := setupPlanService(t)
	ctx := context.Background()

	_, err := svc.ImportSchema(ctx, validSchema("WEB01"), "first")
	require.NoError(t, err)

	_, err = svc.ImportSchema(ctx, validSchema("web01"), "second")
	assert.ErrorIs(t, err, domain.ErrDuplicateShortID)

	_, err = svc.ImportSchema(ctx, validSchema(catalog.ShortID), "builtin clash")
	assert.ErrorIs(t, err, domain.ErrDuplicateShortID)
}

func TestImport_MissingFile(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := setupPlanService(t, obs)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestImport_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	uow := testutil.NewWriteFaultUoW(database, 1, errors.New("disk full"))
	svc := NewPlanService(plans, uow)
	ctx := context.Background()

	_, err := svc.ImportSchema(ctx, validSchema("WEB01"), "inline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, err = plans.GetByShortID(ctx, "WEB01")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestList_BuiltinFirst(t *testing.T) {
	svc, _ := setupPlanService(t)
	ctx := context.Background()

	_, err := svc.ImportSchema(ctx, validSchema("WEB01"), "a")
	require.NoError(t, err)
	_, err = svc.ImportSchema(ctx, validSchema("WEB02"), "b")
	require.NoError(t, err)

	plans, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.True(t, plans[0].IsBuiltin())
	assert.Equal(t, catalog.ShortID, plans[0].ShortID)
}

func TestRemove(t *testing.T) {
	svc, _ := setupPlanService(t)
	ctx := context.Background()

	stored, err := svc.ImportSchema(ctx, validSchema("WEB01"), "inline")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "web01"))
	_, err = svc.Resolve(ctx, stored.ID)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	assert.ErrorIs(t, svc.Remove(ctx, "WEB01"), domain.ErrPlanNotFound)
}

func TestRemove_BuiltinIsReadOnly(t *testing.T) {
	svc, _ := setupPlanService(t)

	for _, ref := range []string{"", "builtin", catalog.ShortID} {
		assert.ErrorIs(t, svc.Remove(context.Background(), ref), domain.ErrBuiltinReadOnly)
	}
}

func TestPlanService_ReportsUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := setupPlanService(t, obs)
	ctx := context.Background()

	_, err := svc.ImportSchema(ctx, validSchema("WEB01"), "inline")
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, "WEB01")
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "WEB01"))
	_ = svc.Remove(ctx, "builtin")

	assert.Equal(t, []string{"import-plan", "resolve-plan", "list-plans", "remove-plan", "remove-plan"}, obs.names())

	last := obs.events[len(obs.events)-1]
	assert.False(t, last.Success)
	assert.ErrorIs(t, last.Err, domain.ErrBuiltinReadOnly)

	imported := obs.events[0]
	assert.True(t, imported.Success)
	assert.Equal(t, 2, imported.Fields["week_count"])
}
