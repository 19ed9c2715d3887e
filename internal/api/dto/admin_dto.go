package dto

// RegisterAdminRequest is the secret-gated registration payload.
type RegisterAdminRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

// AdminLoginRequest is the login payload.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminInfo is the public admin representation.
type AdminInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AdminLoginResponse carries the bearer token and admin identity.
type AdminLoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	Admin   AdminInfo `json:"admin"`
}
