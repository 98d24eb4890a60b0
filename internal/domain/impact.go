package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ImpactUpdate is an admin-authored note describing how donated funds were
// spent. Updates are created once and hard-deleted; there is no edit path.
type ImpactUpdate struct {
	ID          string
	Title       string
	Description *string
	Category    string
	AmountSpent float64
	CreatedBy   string
	CreatedAt   time.Time
}

// ImpactUpdateInput carries the admin form for a new update.
type ImpactUpdateInput struct {
	Title       string
	Description string
	Category    string
	AmountSpent float64
}

// NewImpactUpdate validates and normalizes the input. Title is required after
// trimming; category defaults to General; a non-finite or negative spend
// collapses to 0.
func NewImpactUpdate(in ImpactUpdateInput, createdBy string) (ImpactUpdate, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ImpactUpdate{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "General"
	}
	spent := in.AmountSpent
	if math.IsNaN(spent) || math.IsInf(spent, 0) || spent < 0 {
		spent = 0
	}
	u := ImpactUpdate{
		Title:       title,
		Category:    category,
		AmountSpent: spent,
		CreatedBy:   createdBy,
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		u.Description = &desc
	}
	return u, nil
}
