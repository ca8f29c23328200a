package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is owned by exactly one employer user. Jobs cannot outlive their
// company: company deletion always removes its jobs first.
type Company struct {
	ID          uuid.UUID `json:"id"`
	EmployerID  uuid.UUID `json:"employer_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	Industries  []string  `json:"industries"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCompany creates an unapproved company; approval is an admin action.
func NewCompany(employerID uuid.UUID, name, description string) *Company {
	now := time.Now().UTC()
	return &Company{
		ID:          uuid.New(),
		EmployerID:  employerID,
		Name:        name,
		Description: description,
		Industries:  []string{},
		IsApproved:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
