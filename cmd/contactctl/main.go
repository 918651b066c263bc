package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"codeforge-backend/config"
	"codeforge-backend/internal/app"
	"codeforge-backend/internal/domain"
	"codeforge-backend/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "contactctl",
	Short:         "Operations tool for the contact backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Run a submission through the configured mail transport",
	RunE:  runSend,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration (secrets redacted)",
	RunE:  runConfig,
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported MAIL_PROVIDER values",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.Providers, "\n"))
	},
}

var (
	sendName    string
	sendEmail   string
	sendProject string
	sendTimeout time.Duration
)

func init() {
	sendCmd.Flags().StringVar(&sendName, "name", "", "submitter name")
	sendCmd.Flags().StringVar(&sendEmail, "email", "", "submitter email (receives the acknowledgement)")
	sendCmd.Flags().StringVar(&sendProject, "project", "", "project description")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", time.Minute, "overall send timeout")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(providersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel, "console")

	ctx, cancel := context.WithTimeout(cmd.Context(), sendTimeout)
	defer cancel()

	contactUC, err := app.NewContactUsecase(ctx, cfg, log)
	if err != nil {
		return err
	}

	form := domain.ContactForm{
		Name:    sendName,
		Email:   sendEmail,
		Project: sendProject,
	}
	return sendSubmission(ctx, contactUC, form, cmd.OutOrStdout())
}

// sendSubmission runs form through uc and prints the dispatch report. Errors
// other than a delivery failure are returned as-is, with nothing printed.
func sendSubmission(ctx context.Context, uc domain.ContactUsecase, form domain.ContactForm, out io.Writer) error {
	report, err := uc.Handle(ctx, form)
	if err != nil && !domain.IsDeliveryFailure(err) {
		return err
	}

	body, jerr := json.MarshalIndent(report, "", "  ")
	if jerr != nil {
		return jerr
	}
	fmt.Fprintln(out, string(body))

	if err != nil {
		return fmt.Errorf("%d of %d messages failed: %w", report.Failed(), len(report.Results), errors.Unwrap(err))
	}
	return nil
}

type redactedConfig struct {
	Environment        string   `json:"environment"`
	Port               string   `json:"port"`
	MailProvider       string   `json:"mail_provider"`
	From               string   `json:"from"`
	FromName           string   `json:"from_name"`
	SMTPHost           string   `json:"smtp_host,omitempty"`
	SMTPPort           string   `json:"smtp_port,omitempty"`
	TLSVerify          bool     `json:"tls_verify"`
	MailUser           string   `json:"mail_user,omitempty"`
	PasswordSet        bool     `json:"password_set"`
	AdminEmails        []string `json:"admin_emails"`
	AllowedOrigins     []string `json:"allowed_origins"`
	ExposeErrorDetails bool     `json:"expose_error_details"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	rc := redactedConfig{
		Environment:        cfg.Environment,
		Port:               cfg.Port,
		MailProvider:       cfg.Mail.Provider,
		From:               logger.RedactEmail(cfg.Mail.FromAddress),
		FromName:           cfg.Mail.FromName,
		TLSVerify:          cfg.Mail.TLSVerify,
		MailUser:           logger.RedactEmail(cfg.Mail.Credentials.Username),
		PasswordSet:        cfg.Mail.Credentials.Password != "",
		AdminEmails:        logger.RedactEmails(cfg.AdminEmails),
		AllowedOrigins:     cfg.AllowedOrigins,
		ExposeErrorDetails: cfg.ExposeErrorDetails,
	}
	if cfg.Mail.Provider == config.ProviderSMTP {
		rc.SMTPHost = cfg.Mail.SMTPHost
		rc.SMTPPort = cfg.Mail.SMTPPort
	}

	out, err := json.MarshalIndent(rc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
