package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/melodia/internal/app/models/dto"
	"github.com/okandemir/melodia/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into HTTP responses. Controllers
// call this for any error coming out of the service layer.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAny(err,
		apperrors.ErrResourceNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrRoomNotFound,
		apperrors.ErrHolidayNotFound,
		apperrors.ErrLessonNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrUserNotFound,
	):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})

	case apperrors.IsAny(err,
		apperrors.ErrConflict,
		apperrors.ErrResourceAlreadyExists,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrTeacherHasCourses,
		apperrors.ErrStudentHasLessons,
	):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})

	case apperrors.IsAny(err, apperrors.ErrAccountDisabled, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error()),
		})

	case apperrors.IsAny(err,
		apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrInvalidDateRange,
		apperrors.ErrHolidayRangeInverted,
	):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
