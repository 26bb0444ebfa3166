package domain

import "context"

// OutreachUsecase delivers employer-to-candidate mail. Drafting is the
// generation usecase's job; this one only sends.
type OutreachUsecase interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}
