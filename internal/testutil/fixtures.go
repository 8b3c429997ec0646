package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/planview/internal/domain"
	"github.com/google/uuid"
)

var testShortIDCounter atomic.Int64

// PlanOption customizes a stored plan fixture.
type PlanOption func(*domain.StoredPlan)

func WithShortID(id string) PlanOption {
	return func(p *domain.StoredPlan) {
		p.ShortID = id
	}
}

func WithCreatedAt(t time.Time) PlanOption {
	return func(p *domain.StoredPlan) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

func WithSource(path string) PlanOption {
	return func(p *domain.StoredPlan) {
		p.Source = path
	}
}

func defaultShortID(title string) string {
	upper := strings.ToUpper(title)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testShortIDCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

// NewTestPlan returns a small valid stored plan titled title.
func NewTestPlan(title string, opts ...PlanOption) *domain.StoredPlan {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.StoredPlan{
		ID:      uuid.New().String(),
		ShortID: defaultShortID(title),
		Plan: domain.Plan{
			Title:    title,
			Subtitle: "Test plan",
			Icon:     "smartphone",
			Objectives: domain.Objectives{
				General:  "Ship " + title,
				Specific: []string{"Design", "Build", "Release"},
			},
			Features: domain.Features{Items: []domain.Feature{
				{Title: "Sync", Description: "Offline sync", Icon: "zap", Color: "yellow"},
			}},
			Timeline: []domain.TimelineWeek{
				{Week: 1, Title: "Setup", Tasks: []string{"Repo", "CI"}, Progress: 100},
				{Week: 2, Title: "Build", Tasks: []string{"API"}, Progress: 30},
			},
			Technologies: domain.TechStack{Items: []domain.Technology{
				{Name: "Go", Category: "Backend", Icon: "code"},
			}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
