package dto

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the session token and user summary on success.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SignupRequest carries a new account application.
type SignupRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Password   string `json:"password" validate:"required,min=4"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department" validate:"required"`
	Year       string `json:"year,omitempty"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Year       string `json:"year,omitempty"`
	Status     string `json:"status"`
	Locked     bool   `json:"locked,omitempty"`
}
