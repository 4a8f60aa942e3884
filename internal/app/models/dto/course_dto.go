package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required,oneof=INDIVIDUAL GROUP WORKSHOP"`
	TeacherID  int64  `json:"teacherId" binding:"required,min=1"`
	RoomID     *int64 `json:"roomId,omitempty"`
	Weekday    int    `json:"weekday" binding:"min=0,max=6"` // 0=Sunday .. 6=Saturday
	StartTime  string `json:"startTime" binding:"required"`  // HH:MM
	EndTime    string `json:"endTime" binding:"required"`    // HH:MM
	Frequency  string `json:"frequency" binding:"required,oneof=WEEKLY BIWEEKLY MONTHLY"`
	WeekParity string `json:"weekParity,omitempty" binding:"omitempty,oneof=ALL ODD EVEN"`
	StartDate  string `json:"startDate" binding:"required"` // YYYY-MM-DD
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required,oneof=INDIVIDUAL GROUP WORKSHOP"`
	TeacherID  int64  `json:"teacherId" binding:"required,min=1"`
	RoomID     *int64 `json:"roomId,omitempty"`
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	Frequency  string `json:"frequency" binding:"required,oneof=WEEKLY BIWEEKLY MONTHLY"`
	WeekParity string `json:"weekParity,omitempty" binding:"omitempty,oneof=ALL ODD EVEN"`
	StartDate  string `json:"startDate" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=ACTIVE PAUSED COMPLETED CANCELLED"`
}

// EnrollStudentRequest represents an enrollment creation request
type EnrollStudentRequest struct {
	StudentID  int64  `json:"studentId" binding:"required,min=1"`
	EnrolledAt string `json:"enrolledAt,omitempty"` // YYYY-MM-DD, defaults to today
}

// UpdateEnrollmentStatusRequest toggles an enrollment's status
type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}
