package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "administrador"
	RoleManager Role = "gerente"
	RoleDriver  Role = "conductor"
	RoleClient  Role = "usuario"
)

var Roles = []Role{RoleAdmin, RoleManager, RoleDriver, RoleClient}

func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type PresenceStatus string

const (
	StatusConnected    PresenceStatus = "conectado"
	StatusDisconnected PresenceStatus = "desconectado"
)

type User struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        *string        `json:"phone"`
	PasswordHash string         `json:"-"`
	Role         Role           `json:"role"`
	Status       PresenceStatus `json:"status"`
	Active       bool           `json:"active"`
	PhotoURL     *string        `json:"photo_url"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	Deleted      bool           `json:"deleted"`
	DeletedAt    *time.Time     `json:"deleted_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Active   *bool   `json:"active"`
	Role     *Role   `json:"role"`
	PhotoURL *string `json:"photo_url"`
	Deleted  *bool   `json:"deleted"`
}

// UserSummary resume os usuários por papel e presença
type UserSummary struct {
	Total        int          `json:"total"`
	Connected    int          `json:"connected"`
	Disconnected int          `json:"disconnected"`
	ByRole       map[Role]int `json:"by_role"`
}

type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	UserRole  Role
	jwt.RegisteredClaims
}
