package models

// GenerationResult summarizes one course's lesson generation run.
type GenerationResult struct {
	CourseID   int64     `json:"courseId"`
	CourseName string    `json:"courseName"`
	Created    int       `json:"created"`
	Skipped    int       `json:"skipped"`
	Lessons    []*Lesson `json:"-"` // Newly created records, handed to the caller's commit
}

// BulkGenerationResult aggregates generation over all active courses.
// Courses that produced no new lessons are counted in CoursesProcessed but
// omitted from Courses.
type BulkGenerationResult struct {
	CoursesProcessed int                 `json:"coursesProcessed"`
	TotalCreated     int                 `json:"totalCreated"`
	TotalSkipped     int                 `json:"totalSkipped"`
	Courses          []*GenerationResult `json:"courses"`
}
