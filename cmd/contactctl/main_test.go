package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"codeforge-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContactUsecase struct {
	report domain.DispatchReport
	err    error
}

func (s stubContactUsecase) Handle(ctx context.Context, form domain.ContactForm) (domain.DispatchReport, error) {
	return s.report, s.err
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSendSubmission(t *testing.T) {
	form := domain.ContactForm{Name: "Ada", Email: "ada@example.com", Project: "Need a website"}

	t.Run("Should return a composition error unchanged", func(t *testing.T) {
		composeErr := errors.New("failed to compose contact emails: template: boom")
		var out bytes.Buffer

		err := sendSubmission(context.Background(), stubContactUsecase{err: composeErr}, form, &out)
		assert.Same(t, composeErr, err)
		assert.Empty(t, out.String())
	})

	t.Run("Should return invalid input without printing a report", func(t *testing.T) {
		invalid := &domain.ServiceError{Kind: domain.InvalidInput, Err: domain.ErrInvalidEmailFormat}
		var out bytes.Buffer

		err := sendSubmission(context.Background(), stubContactUsecase{err: invalid}, form, &out)
		assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat)
		assert.Empty(t, out.String())
	})

	t.Run("Should print the report and summarise a delivery failure", func(t *testing.T) {
		report := domain.DispatchReport{Results: []domain.DispatchResult{
			{Recipient: "a@x.com", Kind: domain.DispatchAdmin, Error: "550 mailbox unavailable"},
			{Recipient: "ada@example.com", Kind: domain.DispatchAcknowledgement, Success: true},
		}}
		rejected := errors.New("550 mailbox unavailable")
		failure := &domain.ServiceError{Kind: domain.DeliveryFailure, Report: &report, Err: rejected}
		var out bytes.Buffer

		err := sendSubmission(context.Background(), stubContactUsecase{report: report, err: failure}, form, &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, rejected)
		assert.Contains(t, err.Error(), "1 of 2 messages failed")
		assert.Contains(t, out.String(), `"recipient": "a@x.com"`)
	})

	t.Run("Should print the report on success", func(t *testing.T) {
		report := domain.DispatchReport{Results: []domain.DispatchResult{
			{Recipient: "ada@example.com", Kind: domain.DispatchAcknowledgement, Success: true},
		}}
		var out bytes.Buffer

		require.NoError(t, sendSubmission(context.Background(), stubContactUsecase{report: report}, form, &out))

		var got domain.DispatchReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, report.Results, got.Results)
	})
}

func TestSendCommand_LogProvider(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "log")
	t.Setenv("ADMIN_EMAILS", "a@x.com,b@x.com")
	t.Setenv("MAIL_FROM", "noreply@thecodeforge.dev")

	out, err := runRoot(t, "send", "--name", "Ada", "--email", "ada@example.com", "--project", "Need a website")
	require.NoError(t, err)

	var report domain.DispatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 3)
	assert.Equal(t, 3, report.Succeeded())
	assert.Equal(t, "ada@example.com", report.Results[2].Recipient)
}

func TestSendCommand_InvalidEmail(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "log")
	t.Setenv("ADMIN_EMAILS", "a@x.com")

	out, err := runRoot(t, "send", "--name", "Bob", "--email", "not-an-email", "--project", "x")
	assert.True(t, domain.IsInvalidInput(err))
	assert.Empty(t, out)
}

func TestConfigCommand_Redacts(t *testing.T) {
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("EMAIL_USER", "bot@thecodeforge.dev")
	t.Setenv("EMAIL_PASS", "hunter2")
	t.Setenv("MAIL_FROM", "bot@thecodeforge.dev")
	t.Setenv("ADMIN_EMAILS", "owner@thecodeforge.dev")

	out, err := runRoot(t, "config")
	require.NoError(t, err)

	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "owner@thecodeforge.dev")
	assert.NotContains(t, out, "bot@thecodeforge.dev")

	var cfg redactedConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.True(t, cfg.PasswordSet)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, []string{"ow***@thecodeforge.dev"}, cfg.AdminEmails)
	assert.Equal(t, "bo***@thecodeforge.dev", cfg.MailUser)
}

func TestProvidersCommand(t *testing.T) {
	out, err := runRoot(t, "providers")
	require.NoError(t, err)
	assert.Equal(t, "smtp\ngmail\nses\nlog\n", out)
}
