package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/planview/internal/catalog"
	"github.com/alexanderramin/planview/internal/db"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/importer"
	"github.com/alexanderramin/planview/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewPlanService(
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		plans:    plans,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

func (s *planService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// isBuiltinRef reports whether ref names the built-in plan.
func isBuiltinRef(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref == "" || strings.EqualFold(ref, domain.BuiltinRef) || strings.EqualFold(ref, catalog.ShortID)
}

func (s *planService) Resolve(ctx context.Context, ref string) (plan *domain.StoredPlan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "resolve-plan", startedAt, map[string]any{"ref": ref}, err)
	}()

	if isBuiltinRef(ref) {
		return catalog.Builtin(), nil
	}
	return s.lookup(ctx, s.plans, ref)
}

// lookup tries ref as a short ID, then as a UUID.
func (s *planService) lookup(ctx context.Context, plans repository.PlanRepo, ref string) (*domain.StoredPlan, error) {
	ref = strings.TrimSpace(ref)
	plan, err := plans.GetByShortID(ctx, ref)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, domain.ErrPlanNotFound) {
		return nil, err
	}
	plan, err = plans.GetByID(ctx, ref)
	if err == nil {
		return plan, nil
	}
	if errors.Is(err, domain.ErrPlanNotFound) {
		return nil, fmt.Errorf("plan %q: %w", ref, domain.ErrPlanNotFound)
	}
	return nil, err
}

func (s *planService) Import(ctx context.Context, path string) (*domain.StoredPlan, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		s.observe(ctx, "import-plan", time.Now(), map[string]any{"path": path}, err)
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	source := path
	if abs, absErr := filepath.Abs(path); absErr == nil {
		source = abs
	}
	return s.ImportSchema(ctx, schema, source)
}

func (s *planService) ImportSchema(ctx context.Context, schema *importer.ImportSchema, source string) (plan *domain.StoredPlan, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"short_id": schema.ShortID,
		"source":   source,
	}
	defer func() {
		s.observe(ctx, "import-plan", startedAt, fields, err)
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	shortID := importer.NormalizeShortID(schema.ShortID)
	if isBuiltinRef(shortID) {
		return nil, fmt.Errorf("plan %s: %w", shortID, domain.ErrDuplicateShortID)
	}

	now := s.now()
	plan = &domain.StoredPlan{
		ID:        uuid.New().String(),
		ShortID:   shortID,
		Plan:      *importer.Convert(schema),
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields["week_count"] = plan.Plan.WeekCount()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)

		_, err := txPlans.GetByShortID(ctx, shortID)
		if err == nil {
			return fmt.Errorf("plan %s: %w", shortID, domain.ErrDuplicateShortID)
		}
		if !errors.Is(err, domain.ErrPlanNotFound) {
			return err
		}

		if err := txPlans.Create(ctx, plan); err != nil {
			return fmt.Errorf("storing plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) List(ctx context.Context) (plans []*domain.StoredPlan, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "list-plans", startedAt, map[string]any{"count": len(plans)}, err)
	}()

	stored, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	plans = make([]*domain.StoredPlan, 0, len(stored)+1)
	plans = append(plans, catalog.Builtin())
	plans = append(plans, stored...)
	return plans, nil
}

func (s *planService) Remove(ctx context.Context, ref string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "remove-plan", startedAt, map[string]any{"ref": ref}, err)
	}()

	if isBuiltinRef(ref) {
		return domain.ErrBuiltinReadOnly
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		plan, err := s.lookup(ctx, txPlans, ref)
		if err != nil {
			return err
		}
		return txPlans.Delete(ctx, plan.ID)
	})
}

func formatValidationErrors(errs []error) error {
	return fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
