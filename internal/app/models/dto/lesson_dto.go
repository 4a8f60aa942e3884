package dto

// UpdateLessonStatusRequest changes the status of one lesson occurrence.
type UpdateLessonStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=SCHEDULED COMPLETED CANCELLED MISSED"`
}

// LessonListQuery captures the supported lesson list filters.
type LessonListQuery struct {
	CourseID  int64  `form:"courseId"`
	StudentID int64  `form:"studentId"`
	From      string `form:"from"` // YYYY-MM-DD
	To        string `form:"to"`   // YYYY-MM-DD
}
