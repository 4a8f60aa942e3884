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

// HolidayController handles holiday calendar operations
type HolidayController struct {
	holidayService services.HolidayService
}

// NewHolidayController creates a new HolidayController
func NewHolidayController(holidayService services.HolidayService) *HolidayController {
	return &HolidayController{
		holidayService: holidayService,
	}
}

func bindHoliday(ctx *gin.Context, name, startDate, endDate string) (*models.Holiday, bool) {
	start, err := helpers.ParseDate(startDate)
	if err != nil {
		bindingError(ctx, "Invalid start date", err)
		return nil, false
	}
	end, err := helpers.ParseDate(endDate)
	if err != nil {
		bindingError(ctx, "Invalid end date", err)
		return nil, false
	}
	return &models.Holiday{Name: name, StartDate: start, EndDate: end}, true
}

// CreateHoliday handles holiday creation
// @Summary Create a holiday
// @Description Creates a holiday interval (inclusive on both ends) during which lesson generation can skip dates
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHolidayRequest true "Holiday information"
// @Success 201 {object} dto.APIResponse{data=models.Holiday} "Holiday created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or inverted range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays [post]
func (c *HolidayController) CreateHoliday(ctx *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid holiday data", err)
		return
	}

	holiday, ok := bindHoliday(ctx, req.Name, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	id, err := c.holidayService.CreateHoliday(ctx, holiday)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	holiday.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      holiday,
		Timestamp: time.Now(),
	})
}

// GetHolidayByID retrieves a holiday by ID
// @Summary Get holiday details
// @Description Retrieves a specific holiday by ID
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Holiday} "Holiday retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid holiday ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays/{id} [get]
func (c *HolidayController) GetHolidayByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	holiday, err := c.holidayService.GetHolidayByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      holiday,
		Timestamp: time.Now(),
	})
}

// GetAllHolidays retrieves all holidays
// @Summary Get all holidays
// @Description Retrieves all holidays ordered by start date
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Holiday} "Holidays retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays [get]
func (c *HolidayController) GetAllHolidays(ctx *gin.Context) {
	holidays, err := c.holidayService.GetAllHolidays(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      holidays,
		Timestamp: time.Now(),
	})
}

// UpdateHoliday updates an existing holiday
// @Summary Update a holiday
// @Description Updates an existing holiday interval
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID" Format(int64) minimum(1)
// @Param request body dto.UpdateHolidayRequest true "Updated holiday information"
// @Success 200 {object} dto.APIResponse{data=models.Holiday} "Holiday updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or inverted range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays/{id} [put]
func (c *HolidayController) UpdateHoliday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid holiday data", err)
		return
	}

	holiday, ok := bindHoliday(ctx, req.Name, req.StartDate, req.EndDate)
	if !ok {
		return
	}
	holiday.ID = id

	if err := c.holidayService.UpdateHoliday(ctx, holiday); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      holiday,
		Timestamp: time.Now(),
	})
}

// DeleteHoliday deletes a holiday
// @Summary Delete a holiday
// @Description Deletes a holiday interval
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Holiday deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid holiday ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /holidays/{id} [delete]
func (c *HolidayController) DeleteHoliday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.holidayService.DeleteHoliday(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
