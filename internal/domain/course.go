package domain

import "time"

// CourseCategories is the fixed filter set offered by the learning page.
var CourseCategories = []string{"Technical", "Business", "Soft Skills", "Data Analytics"}

// Course is one catalog entry. External courses link out to the partner
// platform instead of hosting content here.
type Course struct {
	ID              string
	Title           string
	Description     string
	Category        string
	ThumbnailURL    *string
	IsExternal      bool
	IsCertified     bool
	IsActive        bool
	EnrollmentCount int
	ResourceURL     *string
	CreatedAt       time.Time
}
