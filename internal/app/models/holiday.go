package models

import (
	"time"

	"github.com/okandemir/melodia/internal/pkg/schedule"
)

// Holiday is a closed date interval during which no lessons are generated
// when a generation run asks for holidays to be skipped.
type Holiday struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
}

// Interval projects the holiday into the engine's view.
func (h *Holiday) Interval() schedule.Holiday {
	return schedule.Holiday{Name: h.Name, Start: h.StartDate, End: h.EndDate}
}
