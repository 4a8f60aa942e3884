// Package controllers contains the HTTP handlers. Controllers stay thin:
// they bind and validate the request shape, delegate to a service, and let
// middleware.HandleAPIError translate service errors.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/melodia/internal/app/models/dto"
)

// parseIDParam parses a positive int64 path parameter. On failure it writes a
// 400 response and returns ok=false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	idStr := ctx.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithField(name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// bindingError writes a 400 response for a request body that failed binding.
func bindingError(ctx *gin.Context, message string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
