package models

// LoginRequest is the demo login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and the session identity.
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        Session `json:"user"`
}

// Session is the explicit session object handed to boundaries that need the
// signed-in identity. There is no global login state.
type Session struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}
