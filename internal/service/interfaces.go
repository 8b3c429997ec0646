package service

import (
	"context"

	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/importer"
)

// PlanService resolves, imports and manages plan documents. Refs accepted by
// Resolve and Remove are "builtin" (or empty), a short ID, or a plan UUID.
type PlanService interface {
	Resolve(ctx context.Context, ref string) (*domain.StoredPlan, error)
	Import(ctx context.Context, path string) (*domain.StoredPlan, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema, source string) (*domain.StoredPlan, error)
	List(ctx context.Context) ([]*domain.StoredPlan, error)
	Remove(ctx context.Context, ref string) error
}
