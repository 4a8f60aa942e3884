package models

// Teacher represents an instructor giving courses at the school.
type Teacher struct {
	ID        int64   `json:"id" db:"id"`
	UserID    *int64  `json:"userId,omitempty" db:"user_id"` // Nullable, set when the teacher has a login
	FirstName string  `json:"firstName" db:"first_name"`
	LastName  string  `json:"lastName" db:"last_name"`
	Email     string  `json:"email" db:"email"`
	Phone     *string `json:"phone,omitempty" db:"phone"`
	Specialty *string `json:"specialty,omitempty" db:"specialty"` // e.g. piano, violin, vocals
}
