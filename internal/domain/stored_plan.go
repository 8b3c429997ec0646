package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrBuiltinReadOnly  = errors.New("the built-in plan cannot be modified")
	ErrDuplicateShortID = errors.New("a plan with this short ID already exists")
)

// BuiltinRef is the reference that always resolves to the built-in plan.
const BuiltinRef = "builtin"

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

// StoredPlan is a plan document persisted in the catalog.
type StoredPlan struct {
	ID        string
	ShortID   string
	Plan      Plan
	Source    string // path the plan was imported from
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateShortID checks that id is 3-6 uppercase letters followed by
// 2-4 digits (e.g. APP01).
func ValidateShortID(id string) error {
	if id == "" {
		return fmt.Errorf("short ID is required")
	}
	if !shortIDPattern.MatchString(id) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. APP01)", id)
	}
	return nil
}

// DisplayID prefers ShortID and falls back to the first 8 characters of ID.
func (p *StoredPlan) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// IsBuiltin reports whether p is the read-only built-in plan rather than a
// catalog row.
func (p *StoredPlan) IsBuiltin() bool {
	return p.ID == "" && p.Source == BuiltinRef
}
