package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/app/services"
	"github.com/okandemir/melodia/internal/middleware"
)

// CourseController handles course, enrollment and calendar export operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new recurring course. New courses start in ACTIVE status.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Referenced teacher or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course details
// @Description Retrieves a specific course including its enrollments
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves a list of all courses
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Updates a course's schedule, status and metadata. Already generated lessons are unaffected.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes a course together with its enrollments and lessons
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// EnrollStudent enrolls a student in a course
// @Summary Enroll a student
// @Description Enrolls a student in a course. The enrollment day defaults to today.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.EnrollStudentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Student enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollments [post]
func (c *CourseController) EnrollStudent(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid enrollment data", err)
		return
	}

	enrollment, err := c.courseService.EnrollStudent(ctx, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// GetEnrollments lists all enrollments of a course
// @Summary Get course enrollments
// @Description Retrieves all enrollments of a course with student details
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollments [get]
func (c *CourseController) GetEnrollments(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.courseService.GetEnrollments(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// UpdateEnrollmentStatus activates or deactivates an enrollment
// @Summary Update enrollment status
// @Description Sets an enrollment to ACTIVE or INACTIVE. Inactive enrollments receive no new lessons.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param enrollmentId path int true "Enrollment ID" Format(int64) minimum(1)
// @Param request body dto.UpdateEnrollmentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Enrollment status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollments/{enrollmentId} [patch]
func (c *CourseController) UpdateEnrollmentStatus(ctx *gin.Context) {
	if _, ok := parseIDParam(ctx, "id"); !ok {
		return
	}
	enrollmentID, ok := parseIDParam(ctx, "enrollmentId")
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid enrollment status", err)
		return
	}

	if err := c.courseService.UpdateEnrollmentStatus(ctx, enrollmentID, models.EnrollmentStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// GetCourseLessons lists the lessons of one course
// @Summary List course lessons
// @Description Lists all generated lesson occurrences of a course, optionally bounded by an inclusive date range
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Lesson} "Lessons retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID or date range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/lessons [get]
func (c *CourseController) GetCourseLessons(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lessons, err := c.courseService.CourseLessons(ctx, courseID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lessons,
		Timestamp: time.Now(),
	})
}

// ExportCalendar renders the course's lessons as an iCalendar feed
// @Summary Export course calendar
// @Description Exports all generated lessons of a course as an iCalendar (.ics) document
// @Tags courses
// @Produce text/calendar
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/calendar.ics [get]
func (c *CourseController) ExportCalendar(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	calendar, err := c.courseService.CourseCalendar(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="course.ics"`)
	ctx.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar))
}
