package domain

import (
	"fmt"
	"strings"
	"time"
)

// Opportunity is one job-board posting.
type Opportunity struct {
	ID               string
	Title            string
	Company          string
	Location         string
	Type             string
	Description      string
	IsActive         bool
	ApplicationCount int
	CreatedAt        time.Time
}

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	ApplicationPending ApplicationStatus = "pending"
)

// Application is one member's application to an opportunity.
type Application struct {
	ID            string
	OpportunityID string
	UserID        string
	CoverLetter   string
	Status        ApplicationStatus
	CreatedAt     time.Time
}

// NewApplication validates and builds a pending application.
func NewApplication(opportunityID, userID, coverLetter string) (Application, error) {
	if strings.TrimSpace(userID) == "" {
		return Application{}, fmt.Errorf("%w: you must be logged in to apply", ErrUnauthorized)
	}
	if strings.TrimSpace(coverLetter) == "" {
		return Application{}, fmt.Errorf("%w: cover letter is required", ErrInvalidInput)
	}
	return Application{
		OpportunityID: opportunityID,
		UserID:        userID,
		CoverLetter:   strings.TrimSpace(coverLetter),
		Status:        ApplicationPending,
	}, nil
}
