package auth

import "time"

type signupInput struct {
	Body signupRequest
}

// Credential fields are schema-optional on purpose: the domain
// validator owns missing-input errors so they answer 400, not the
// schema layer's 422.
type signupRequest struct {
	Email    string `json:"email,omitempty" doc:"Caregiver email address"`
	Password string `json:"password,omitempty" doc:"Password, at least 6 characters"`
	FullName string `json:"full_name,omitempty" doc:"Caregiver display name"`
}

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type tokenOutput struct {
	Body tokenResponse
}

type tokenResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

type logoutOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

type meOutput struct {
	Body meResponse
}

type meResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
