package dto

type SignupRequestDTO struct {
	Email     string `json:"email" validate:"required,email,max=255" example:"buyer@example.com"`
	Password  string `json:"password" validate:"required,min=8,max=72" example:"s3cretpass"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100" example:"Jonas"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100" example:"Jonaitis"`
	Role      string `json:"role" validate:"omitempty,oneof=buyer seller admin" example:"buyer"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"buyer@example.com"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type UserResponseDTO struct {
	ID        string `json:"id" example:"5b0a4b8e-3f5c-4b8f-9f5e-8f0a4b8e3f5c"`
	Email     string `json:"email" example:"buyer@example.com"`
	FirstName string `json:"first_name" example:"Jonas"`
	LastName  string `json:"last_name" example:"Jonaitis"`
	Role      string `json:"role" example:"buyer"`
}

type AuthResponseDTO struct {
	Status string          `json:"status" example:"success"`
	Token  string          `json:"token"`
	User   UserResponseDTO `json:"user"`
}

type ProfileResponseDTO struct {
	Status string          `json:"status" example:"success"`
	User   UserResponseDTO `json:"user"`
}
