package usecase

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
	"go-jobsclub-backend/pkg/email"
)

type outreachUsecase struct {
	mailer *email.Service
}

func NewOutreachUsecase(mailer *email.Service) domain.OutreachUsecase {
	return &outreachUsecase{mailer: mailer}
}

func (u *outreachUsecase) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if _, err := mail.ParseAddress(to); err != nil {
		return apperror.BadRequest("Invalid recipient address")
	}
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(htmlBody) == "" {
		return apperror.BadRequest("Subject and body are required")
	}
	if !u.mailer.IsConfigured() {
		return apperror.New(503, "Email delivery is not configured", nil)
	}

	if err := u.mailer.SendHTML(to, subject, htmlBody); err != nil {
		slog.Error("outreach email delivery failed", "to", to, "error", err)
		return apperror.BadGateway("Failed to deliver email", err)
	}
	slog.Info("outreach email sent", "to", to)
	return nil
}
