package models

import "time"

// Student represents a pupil of the school.
type Student struct {
	ID        int64      `json:"id" db:"id"`
	FirstName string     `json:"firstName" db:"first_name"`
	LastName  string     `json:"lastName" db:"last_name"`
	Email     *string    `json:"email,omitempty" db:"email"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	BirthDate *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	IsActive  bool       `json:"isActive" db:"is_active"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
