package domain

import "context"

// Credentials is the login payload shared by both roles.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthSession is the issued session: a signed token plus the identity it
// carries, echoed back for the frontend.
type AuthSession struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type AuthUsecase interface {
	RegisterCandidate(ctx context.Context, candidate *Candidate, password string) error
	RegisterEmployer(ctx context.Context, employer *Employer, password string) error
	LoginCandidate(ctx context.Context, creds Credentials) (*AuthSession, error)
	LoginEmployer(ctx context.Context, creds Credentials) (*AuthSession, error)
	// LoginAdmin checks the statically configured admin credentials; there
	// is no admin self-registration.
	LoginAdmin(ctx context.Context, creds Credentials) (*AuthSession, error)
}
