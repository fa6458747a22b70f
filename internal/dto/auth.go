package dto

type RegistrationRequestDTO struct {
	Email     string `json:"email" validate:"required,email" example:"user@example.com"`
	FirstName string `json:"first_name" validate:"required" example:"John"`
	LastName  string `json:"last_name" validate:"required" example:"Doe"`
	Password  string `json:"password" validate:"required,min=8" example:"secret123"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"secret123"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}
