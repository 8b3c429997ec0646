package repository

import (
	"context"

	"github.com/alexanderramin/planview/internal/domain"
)

// PlanRepo persists imported plan documents.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.StoredPlan) error
	GetByID(ctx context.Context, id string) (*domain.StoredPlan, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.StoredPlan, error)
	List(ctx context.Context) ([]*domain.StoredPlan, error)
	Delete(ctx context.Context, id string) error
}
