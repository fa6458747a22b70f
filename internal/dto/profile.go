package dto

type ProfileResponseDTO struct {
	Email        string `json:"email" example:"user@example.com"`
	FirstName    string `json:"first_name" example:"John"`
	LastName     string `json:"last_name" example:"Doe"`
	ProfileImage string `json:"profile_image" example:"http://localhost:8080/uploads/profile-1700000000-42.png"`
}

type UpdateProfileRequestDTO struct {
	FirstName string `json:"first_name" validate:"required" example:"John"`
	LastName  string `json:"last_name" validate:"required" example:"Doe"`
}
