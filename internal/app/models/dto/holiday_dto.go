package dto

// CreateHolidayRequest represents holiday creation data. Dates are inclusive
// on both ends.
type CreateHolidayRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"endDate" binding:"required"`   // YYYY-MM-DD
}

// UpdateHolidayRequest represents holiday update data
type UpdateHolidayRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}
