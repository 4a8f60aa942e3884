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

// LessonController handles listing lessons and updating their status
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// ListLessons lists lessons with optional filters
// @Summary List lessons
// @Description Lists lesson occurrences filtered by course, student and inclusive date range
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Course ID"
// @Param studentId query int false "Student ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Lesson} "Lessons retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	var query dto.LessonListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		bindingError(ctx, "Invalid lesson filters", err)
		return
	}

	lessons, err := c.lessonService.ListLessons(ctx, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lessons,
		Timestamp: time.Now(),
	})
}

// UpdateLessonStatus updates the status of a lesson
// @Summary Update lesson status
// @Description Transitions a lesson occurrence to SCHEDULED, COMPLETED, CANCELLED or MISSED
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID" Format(int64) minimum(1)
// @Param request body dto.UpdateLessonStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Lesson status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/{id}/status [patch]
func (c *LessonController) UpdateLessonStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateLessonStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid lesson status", err)
		return
	}

	if err := c.lessonService.UpdateLessonStatus(ctx, id, models.LessonStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
