package types

type AuthData struct {
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Token    string `json:"token,omitempty"`
}

type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    *AuthData `json:"data,omitempty"`
}
