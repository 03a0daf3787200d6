package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role values understood by the service. Every authorization decision in the
// system keys off one of these plus the caller's relationship to a task.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User is the authenticated identity carried through request context.
type User struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// CanAssignTasks reports whether the user may hand work to someone else.
func (u *User) CanAssignTasks() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// Claims is the JWT payload: identity plus role, nothing else.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionResponse is returned by login and register.
type SessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// TokenGeneratorAPI creates and verifies bearer tokens.
type TokenGeneratorAPI interface {
	GenerateToken(u *User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// ServiceAPI is the surface the HTTP layer depends on.
type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*SessionResponse, error)
	Register(dto RegisterDTO) (*SessionResponse, error)
	CurrentUser(userID int64) (*User, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type ctxKey string

const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}

// JWTTokenGenerator signs HS256 tokens carrying the identity claims.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}
