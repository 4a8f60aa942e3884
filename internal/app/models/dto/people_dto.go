package dto

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// UpdateTeacherRequest represents teacher update data
type UpdateTeacherRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"` // YYYY-MM-DD
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// CreateRoomRequest represents room creation data
type CreateRoomRequest struct {
	Name     string  `json:"name" binding:"required"`
	Capacity int     `json:"capacity" binding:"required,min=1"`
	Location *string `json:"location,omitempty"`
}

// UpdateRoomRequest represents room update data
type UpdateRoomRequest struct {
	Name     string  `json:"name" binding:"required"`
	Capacity int     `json:"capacity" binding:"required,min=1"`
	Location *string `json:"location,omitempty"`
}
