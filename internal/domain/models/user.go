package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole enumerates the recognized account roles.
type UserRole string

const (
	RoleJobSeeker  UserRole = "job_seeker"
	RoleEmployer   UserRole = "employer"
	RoleSuperAdmin UserRole = "super_admin"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents a platform account. Rows are removed only through the
// cascade deletion path, never by a direct single-row delete.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates an active user with a fresh ID and timestamps.
func NewUser(email, passwordHash, fullName string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *User) IsEmployer() bool   { return u.Role == RoleEmployer }
func (u *User) IsJobSeeker() bool  { return u.Role == RoleJobSeeker }
func (u *User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }
