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

// RoomController handles room management operations
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// CreateRoom handles room creation
// @Summary Create a new room
// @Description Creates a new teaching room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Room name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid room data", err)
		return
	}

	room := &models.Room{
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
	}

	id, err := c.roomService.CreateRoom(ctx, room)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	room.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// GetRoomByID retrieves a room by ID
// @Summary Get room details
// @Description Retrieves a specific room by ID
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoomByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// GetAllRooms retrieves all rooms
// @Summary Get all rooms
// @Description Retrieves a list of all rooms
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [get]
func (c *RoomController) GetAllRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAllRooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rooms,
		Timestamp: time.Now(),
	})
}

// UpdateRoom updates an existing room
// @Summary Update a room
// @Description Updates an existing room with new information
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRoomRequest true "Updated room information"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid room data", err)
		return
	}

	room := &models.Room{
		ID:       id,
		Name:     req.Name,
		Capacity: req.Capacity,
		Location: req.Location,
	}

	if err := c.roomService.UpdateRoom(ctx, room); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      room,
		Timestamp: time.Now(),
	})
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Description Deletes a room; courses referencing it keep running without one
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Room deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
