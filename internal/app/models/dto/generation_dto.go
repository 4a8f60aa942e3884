package dto

// GenerateLessonsRequest asks for lesson generation over a date range for one
// course.
type GenerateLessonsRequest struct {
	CourseID     int64  `json:"courseId" binding:"required,min=1"`
	StartDate    string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate      string `json:"endDate" binding:"required"`   // YYYY-MM-DD
	SkipHolidays bool   `json:"skipHolidays"`
}

// GenerateBulkRequest asks for lesson generation over all active courses.
type GenerateBulkRequest struct {
	StartDate    string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate      string `json:"endDate" binding:"required"`   // YYYY-MM-DD
	SkipHolidays bool   `json:"skipHolidays"`
}

// GenerationResponse reports one course's generation outcome.
type GenerationResponse struct {
	CourseID int64 `json:"courseId"`
	Created  int   `json:"created"`
	Skipped  int   `json:"skipped"`
}

// CourseGenerationSummary is the per-course line of a bulk run.
type CourseGenerationSummary struct {
	CourseID   int64  `json:"courseId"`
	CourseName string `json:"courseName"`
	Created    int    `json:"created"`
	Skipped    int    `json:"skipped"`
}

// BulkGenerationResponse reports the aggregate outcome of a bulk run. Only
// courses that produced at least one new lesson appear in Courses.
type BulkGenerationResponse struct {
	CoursesProcessed int                       `json:"coursesProcessed"`
	TotalCreated     int                       `json:"totalCreated"`
	TotalSkipped     int                       `json:"totalSkipped"`
	Courses          []CourseGenerationSummary `json:"courses"`
}
