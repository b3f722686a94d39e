package request

// CreateUserRequest represents the admin user creation request body
type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Role     string  `json:"role" binding:"required"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdateUserRequest represents the admin user update request body
type UpdateUserRequest struct {
	Name    string  `json:"name"`
	Role    *string `json:"role"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
