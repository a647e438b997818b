// internal/models/auth.go
package models

// SignInPayload is the staff sign-in request body.
type SignInPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpPayload is the staff registration request body.
type SignUpPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the public subset of a staff account returned on sign-in.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse carries the bearer token a client stores as its credential.
type AuthResponse struct {
	Token string    `json:"token"`
	User  *AuthUser `json:"user,omitempty"`
}
