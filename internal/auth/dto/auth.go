package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required,len=10,numeric"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the public-safe projection of a new user. The
// original API exposed the identifier under both "userId" and "id", so
// both are kept for client compatibility.
type RegisterResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	ID       string `json:"id"`
}

type LoginResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	ID       string `json:"id"`
	Token    string `json:"token"`
}
