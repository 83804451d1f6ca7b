package transport

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

type MeResponse struct {
	Username string `json:"username"`
}
