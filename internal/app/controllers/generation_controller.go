package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/app/services"
	"github.com/okandemir/melodia/internal/middleware"
	"github.com/okandemir/melodia/internal/pkg/helpers"
)

// GenerationController exposes the lesson generation engine over HTTP
type GenerationController struct {
	generationService *services.GenerationService
}

// NewGenerationController creates a new GenerationController
func NewGenerationController(generationService *services.GenerationService) *GenerationController {
	return &GenerationController{
		generationService: generationService,
	}
}

func parseRange(ctx *gin.Context, startDate, endDate string) (time.Time, time.Time, bool) {
	from, err := helpers.ParseDate(startDate)
	if err != nil {
		bindingError(ctx, "Invalid start date", err)
		return time.Time{}, time.Time{}, false
	}
	to, err := helpers.ParseDate(endDate)
	if err != nil {
		bindingError(ctx, "Invalid end date", err)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// GenerateLessons generates lessons for one course
// @Summary Generate lessons for a course
// @Description Expands the course's recurrence rule over the inclusive date range and persists the new lesson occurrences. Re-running the same range is idempotent.
// @Tags generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateLessonsRequest true "Generation parameters"
// @Success 200 {object} dto.APIResponse{data=dto.GenerationResponse} "Generation finished"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/generate [post]
func (c *GenerationController) GenerateLessons(ctx *gin.Context) {
	var req dto.GenerateLessonsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid generation request", err)
		return
	}

	from, to, ok := parseRange(ctx, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	result, err := c.generationService.GenerateForCourse(ctx, req.CourseID, from, to, req.SkipHolidays)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.GenerationResponse{
			CourseID: result.CourseID,
			Created:  result.Created,
			Skipped:  result.Skipped,
		},
		Timestamp: time.Now(),
	})
}

// GenerateBulk generates lessons for all active courses
// @Summary Generate lessons for all active courses
// @Description Runs lesson generation over every ACTIVE course for the given range. A failing course is logged and skipped; the run continues.
// @Tags generation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateBulkRequest true "Generation parameters"
// @Success 200 {object} dto.APIResponse{data=dto.BulkGenerationResponse} "Bulk generation finished"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/generate/bulk [post]
func (c *GenerationController) GenerateBulk(ctx *gin.Context) {
	var req dto.GenerateBulkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid generation request", err)
		return
	}

	from, to, ok := parseRange(ctx, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	result, err := c.generationService.GenerateBulk(ctx, from, to, req.SkipHolidays)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toBulkResponse(result),
		Timestamp: time.Now(),
	})
}

func toBulkResponse(result *models.BulkGenerationResult) dto.BulkGenerationResponse {
	resp := dto.BulkGenerationResponse{
		CoursesProcessed: result.CoursesProcessed,
		TotalCreated:     result.TotalCreated,
		TotalSkipped:     result.TotalSkipped,
		Courses:          make([]dto.CourseGenerationSummary, 0, len(result.Courses)),
	}
	for _, course := range result.Courses {
		resp.Courses = append(resp.Courses, dto.CourseGenerationSummary{
			CourseID:   course.CourseID,
			CourseName: course.CourseName,
			Created:    course.Created,
			Skipped:    course.Skipped,
		})
	}
	return resp
}
