package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/melodia/internal/app/controllers"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/middleware"
)

// SetupRouter configures all application routes. Reads are available to any
// authenticated staff member; mutations of school data require the ADMIN
// role. Lesson status updates are the exception: teachers record outcomes of
// their own lessons.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	roomController *controllers.RoomController,
	courseController *controllers.CourseController,
	holidayController *controllers.HolidayController,
	lessonController *controllers.LessonController,
	generationController *controllers.GenerationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(string(models.RoleAdmin))

	// Staff accounts are provisioned by admins; there is no self-service signup.
	authenticated.POST("/auth/register", adminOnly, authController.Register)

	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)

		teachersAdmin := teachers.Group("", adminOnly)
		{
			teachersAdmin.POST("", teacherController.CreateTeacher)
			teachersAdmin.PUT("/:id", teacherController.UpdateTeacher)
			teachersAdmin.DELETE("/:id", teacherController.DeleteTeacher)
		}
	}

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)

		studentsAdmin := students.Group("", adminOnly)
		{
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	rooms := authenticated.Group("/rooms")
	{
		rooms.GET("", roomController.GetAllRooms)
		rooms.GET("/:id", roomController.GetRoomByID)

		roomsAdmin := rooms.Group("", adminOnly)
		{
			roomsAdmin.POST("", roomController.CreateRoom)
			roomsAdmin.PUT("/:id", roomController.UpdateRoom)
			roomsAdmin.DELETE("/:id", roomController.DeleteRoom)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/enrollments", courseController.GetEnrollments)
		courses.GET("/:id/lessons", courseController.GetCourseLessons)
		courses.GET("/:id/calendar.ics", courseController.ExportCalendar)

		coursesAdmin := courses.Group("", adminOnly)
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
			coursesAdmin.POST("/:id/enrollments", courseController.EnrollStudent)
			coursesAdmin.PATCH("/:id/enrollments/:enrollmentId", courseController.UpdateEnrollmentStatus)
		}
	}

	holidays := authenticated.Group("/holidays")
	{
		holidays.GET("", holidayController.GetAllHolidays)
		holidays.GET("/:id", holidayController.GetHolidayByID)

		holidaysAdmin := holidays.Group("", adminOnly)
		{
			holidaysAdmin.POST("", holidayController.CreateHoliday)
			holidaysAdmin.PUT("/:id", holidayController.UpdateHoliday)
			holidaysAdmin.DELETE("/:id", holidayController.DeleteHoliday)
		}
	}

	lessons := authenticated.Group("/lessons")
	{
		lessons.GET("", lessonController.ListLessons)
		lessons.PATCH("/:id/status", lessonController.UpdateLessonStatus)

		lessonsAdmin := lessons.Group("", adminOnly)
		{
			lessonsAdmin.POST("/generate", generationController.GenerateLessons)
			lessonsAdmin.POST("/generate/bulk", generationController.GenerateBulk)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
