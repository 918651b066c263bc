// Package app wires configuration into the contact service. Both the HTTP
// server and contactctl build their dependencies through it.
package app

import (
	"context"
	"fmt"

	"codeforge-backend/config"
	"codeforge-backend/internal/domain"
	"codeforge-backend/internal/usecase"
	"codeforge-backend/pkg/email"
	"codeforge-backend/pkg/logger"
	"codeforge-backend/pkg/validation"
)

// NewSender builds the mail transport selected by MAIL_PROVIDER.
func NewSender(ctx context.Context, cfg *config.Config, log *logger.Logger) (email.Sender, error) {
	switch cfg.Mail.Provider {
	case config.ProviderSMTP:
		sender := email.NewSMTPSender(cfg.SMTPConfig())
		if !sender.IsConfigured() {
			log.Warn().Msg("SMTP credentials not fully configured - contact form deliveries will fail")
		}
		if !cfg.Mail.TLSVerify {
			log.Warn().Msg("SMTP TLS certificate verification is disabled")
		}
		return sender, nil
	case config.ProviderGmail:
		return email.NewGmailSender(ctx, cfg.GmailConfig())
	case config.ProviderSES:
		return email.NewSESSender(ctx, cfg.SESConfig())
	case config.ProviderLog:
		return email.NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
}

// NewContactUsecase builds the validator, composer and transport and returns the service.
func NewContactUsecase(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.ContactUsecase, error) {
	sender, err := NewSender(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up mail transport: %w", err)
	}

	composer, err := email.NewComposer(cfg.EmailBrand())
	if err != nil {
		return nil, err
	}

	validator := usecase.NewSubmissionValidator(validation.New())
	return usecase.NewContactUsecase(validator, composer, sender, cfg.Recipients(), log), nil
}
