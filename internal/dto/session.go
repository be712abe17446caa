package dto

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	SessionID string `json:"session_id"`
	User      User   `json:"user"`
}

type StepRequest struct {
	Step int `json:"step"`
}
