package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okandemir/melodia/internal/app/models"
	"github.com/okandemir/melodia/internal/app/repositories"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
)

// RoomService defines the interface for room management
type RoomService interface {
	CreateRoom(ctx context.Context, room *models.Room) (int64, error)
	GetRoomByID(ctx context.Context, id int64) (*models.Room, error)
	GetAllRooms(ctx context.Context) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id int64) error
}

// roomServiceImpl implements the RoomService interface
type roomServiceImpl struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo *repositories.RoomRepository) RoomService {
	return &roomServiceImpl{
		roomRepo: roomRepo,
	}
}

func (s *roomServiceImpl) validateRoom(room *models.Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(room.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if room.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateRoom creates a new room
func (s *roomServiceImpl) CreateRoom(ctx context.Context, room *models.Room) (int64, error) {
	if err := s.validateRoom(room); err != nil {
		return 0, err
	}

	id, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, repositories.ErrRoomNameExists) {
			return 0, apperrors.NewConflictError("a room with this name already exists")
		}
		return 0, fmt.Errorf("error creating room: %w", err)
	}
	return id, nil
}

// GetRoomByID retrieves a room by ID
func (s *roomServiceImpl) GetRoomByID(ctx context.Context, id int64) (*models.Room, error) {
	if id <= 0 {
		return nil, apperrors.ErrRoomNotFound
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return room, nil
}

// GetAllRooms retrieves all rooms
func (s *roomServiceImpl) GetAllRooms(ctx context.Context) ([]*models.Room, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRoom updates an existing room
func (s *roomServiceImpl) UpdateRoom(ctx context.Context, room *models.Room) error {
	if err := s.validateRoom(room); err != nil {
		return err
	}
	if room.ID <= 0 {
		return apperrors.ErrRoomNotFound
	}

	err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrRoomNotFound
		}
		if errors.Is(err, repositories.ErrRoomNameExists) {
			return apperrors.NewConflictError("a room with this name already exists")
		}
		return fmt.Errorf("error updating room: %w", err)
	}
	return nil
}

// DeleteRoom deletes a room by ID
func (s *roomServiceImpl) DeleteRoom(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrRoomNotFound
	}

	err := s.roomRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("error deleting room: %w", err)
	}
	return nil
}
