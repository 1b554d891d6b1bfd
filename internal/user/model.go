package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsSeller     bool      `json:"is_seller"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the one-to-one user profile row created at registration time.
type Profile struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"user_id"`
	Address *string `json:"address"`
}

type RegisterParams struct {
	Email    string
	Password string
	IsSeller bool
}
