package model

type UserProfile struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type AuthResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
	Token   string      `json:"token,omitempty"`
}

type TokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}
