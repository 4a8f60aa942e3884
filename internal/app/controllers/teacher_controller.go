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

// TeacherController handles instructor management operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// CreateTeacher handles teacher creation
// @Summary Create a new teacher
// @Description Creates a new teacher with the provided information
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher} "Teacher created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Teacher email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid teacher data", err)
		return
	}

	teacher := &models.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}

	id, err := c.teacherService.CreateTeacher(ctx, teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// GetTeacherByID retrieves a teacher by ID
// @Summary Get teacher details
// @Description Retrieves a specific teacher by ID
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacherByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// GetAllTeachers retrieves all teachers
// @Summary Get all teachers
// @Description Retrieves a list of all teachers
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teachers,
		Timestamp: time.Now(),
	})
}

// UpdateTeacher updates an existing teacher
// @Summary Update a teacher
// @Description Updates an existing teacher with new information
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTeacherRequest true "Updated teacher information"
// @Success 200 {object} dto.APIResponse{data=models.Teacher} "Teacher updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid teacher data", err)
		return
	}

	teacher := &models.Teacher{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	}

	if err := c.teacherService.UpdateTeacher(ctx, teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      teacher,
		Timestamp: time.Now(),
	})
}

// DeleteTeacher deletes a teacher
// @Summary Delete a teacher
// @Description Deletes a teacher that has no assigned courses
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Teacher deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher still has courses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
