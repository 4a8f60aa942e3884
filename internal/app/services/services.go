package services

// Services defined in this package:
// - AuthService: authentication and account registration
// - TeacherService: instructor management
// - StudentService: student management
// - RoomService: room management
// - CourseService: course and enrollment management
// - HolidayService: holiday calendar management
// - LessonService: listing and status updates of lesson occurrences
// - GenerationService: recurring lesson generation (single course and bulk)
