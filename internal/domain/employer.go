package domain

import (
	"context"
	"time"
)

type Employer struct {
	ID         int64      `json:"id"`
	FirstName  string     `json:"firstname" validate:"required,max=255"`
	LastName   string     `json:"lastname" validate:"required,max=255"`
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"-"`
	Active     bool       `json:"active"`
	Company    string     `json:"company" validate:"required,max=255"`
	Phone      *string    `json:"phone,omitempty"`
	JoinedDate *time.Time `json:"joined_date,omitempty"`
}

func (e *Employer) FullName() string {
	return e.FirstName + " " + e.LastName
}

type EmployerRepository interface {
	Create(ctx context.Context, employer *Employer) error
	GetByID(ctx context.Context, id int64) (*Employer, error)
	GetByEmail(ctx context.Context, email string) (*Employer, error)
}
