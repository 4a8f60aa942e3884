package models

// Room represents a teaching room. Rooms are informational here; availability
// conflicts are handled by a separate scheduling feature.
type Room struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Capacity int     `json:"capacity" db:"capacity"`
	Location *string `json:"location,omitempty" db:"location"`
}
