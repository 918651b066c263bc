package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"codeforge-backend/internal/domain"
	"codeforge-backend/pkg/email"
	"codeforge-backend/pkg/validation"

	"github.com/joho/godotenv"
)

// Mail providers understood by MAIL_PROVIDER
const (
	ProviderSMTP  = "smtp"
	ProviderGmail = "gmail"
	ProviderSES   = "ses"
	ProviderLog   = "log"
)

// Providers lists every supported MAIL_PROVIDER value.
var Providers = []string{ProviderSMTP, ProviderGmail, ProviderSES, ProviderLog}

var defaultAllowedOrigins = []string{
	"https://www.thecodeforge.dev",
	"https://thecodeforge.dev",
	"https://codeforge.vercel.app",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

type Config struct {
	Port        string
	Environment string
	// Logging
	LogLevel  string
	LogFormat string
	// Whether 500 responses carry the underlying error text
	ExposeErrorDetails bool
	// Exact origins allowed by CORS
	AllowedOrigins []string
	// Every submission is copied to these addresses, in this order
	AdminEmails []string
	Mail        MailConfig
	Brand       BrandConfig
	// HTTP server timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// MailConfig is the typed mail transport configuration.
type MailConfig struct {
	Provider    string
	Credentials Credentials
	FromAddress string
	FromName    string
	TLSVerify   bool
	SMTPHost    string
	SMTPPort    string
	// Gmail API
	GmailCredentialsJSON string
	GmailClientID        string
	GmailClientSecret    string
	GmailRefreshToken    string
	// AWS SES
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
}

// Credentials are the mail account login.
type Credentials struct {
	Username string
	Password string
}

// BrandConfig is the company identity printed in outgoing mail.
type BrandConfig struct {
	Name         string
	ContactEmail string
	Site         string
	Tagline      string
	ResponseTime string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))
	brandName := getEnv("BRAND_NAME", "CodeForge")
	emailUser := getEnv("EMAIL_USER", "")

	cfg := &Config{
		Port:               getEnv("PORT", "3001"),
		Environment:        env,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		ExposeErrorDetails: getEnvBool("EXPOSE_ERROR_DETAILS", env != "production"),
		AllowedOrigins:     getEnvList("ALLOWED_ORIGINS", defaultAllowedOrigins),
		AdminEmails:        getEnvList("ADMIN_EMAILS", getEnvList("ADMIN_EMAIL", nil)),
		Mail: MailConfig{
			Provider: strings.ToLower(getEnv("MAIL_PROVIDER", ProviderSMTP)),
			Credentials: Credentials{
				Username: emailUser,
				Password: getEnv("EMAIL_PASS", ""),
			},
			FromAddress:          getEnv("MAIL_FROM", emailUser),
			FromName:             getEnv("MAIL_FROM_NAME", brandName),
			TLSVerify:            getEnvBool("SMTP_TLS_VERIFY", true),
			SMTPHost:             getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:             getEnv("SMTP_PORT", "587"),
			GmailCredentialsJSON: getEnv("GMAIL_CREDENTIALS_JSON", ""),
			GmailClientID:        getEnv("GMAIL_CLIENT_ID", ""),
			GmailClientSecret:    getEnv("GMAIL_CLIENT_SECRET", ""),
			GmailRefreshToken:    getEnv("GMAIL_REFRESH_TOKEN", ""),
			AWSRegion:            getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKey:         getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey:         getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Brand: BrandConfig{
			Name:         brandName,
			ContactEmail: getEnv("BRAND_CONTACT_EMAIL", "info@thecodeforge.dev"),
			Site:         getEnv("BRAND_SITE", "thecodeforge.dev"),
			Tagline:      getEnv("BRAND_TAGLINE", "Forging the future of technology"),
			ResponseTime: getEnv("BRAND_RESPONSE_TIME", "Within 4 business hours"),
		},
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.AdminEmails) == 0 {
		log.Println("WARNING: ADMIN_EMAILS is empty. Submissions will only be acknowledged to the sender.")
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV (or NODE_ENV) is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type mailRules struct {
	Admins   []string `validate:"dive,contact_email"`
	From     string   `validate:"omitempty,contact_email"`
	Provider string   `validate:"oneof=smtp gmail ses log"`
}

// Validate rejects malformed admin addresses and unknown providers.
func (c *Config) Validate() error {
	rules := mailRules{
		Admins:   c.AdminEmails,
		From:     c.Mail.FromAddress,
		Provider: c.Mail.Provider,
	}
	if err := validation.New().Struct(rules); err != nil {
		return fmt.Errorf("invalid configuration: %s", strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return nil
}

// Recipients returns the immutable admin list handed to the contact service.
func (c *Config) Recipients() domain.RecipientList {
	return domain.NewRecipientList(c.AdminEmails, c.Mail.FromAddress)
}

// EmailBrand maps the brand settings onto the composer's Brand.
func (c *Config) EmailBrand() email.Brand {
	return email.Brand{
		Name:         c.Brand.Name,
		SenderName:   c.Mail.FromName,
		ContactEmail: c.Brand.ContactEmail,
		Site:         c.Brand.Site,
		Tagline:      c.Brand.Tagline,
		ResponseTime: c.Brand.ResponseTime,
	}
}

// SMTPConfig returns the SMTP transport settings.
func (c *Config) SMTPConfig() email.SMTPConfig {
	return email.SMTPConfig{
		Host:      c.Mail.SMTPHost,
		Port:      c.Mail.SMTPPort,
		Username:  c.Mail.Credentials.Username,
		Password:  c.Mail.Credentials.Password,
		TLSVerify: c.Mail.TLSVerify,
	}
}

// GmailConfig returns the Gmail API transport settings.
func (c *Config) GmailConfig() email.GmailConfig {
	return email.GmailConfig{
		CredentialsJSON: c.Mail.GmailCredentialsJSON,
		ClientID:        c.Mail.GmailClientID,
		ClientSecret:    c.Mail.GmailClientSecret,
		RefreshToken:    c.Mail.GmailRefreshToken,
		SenderAddress:   c.Mail.FromAddress,
	}
}

// SESConfig returns the AWS SES transport settings.
func (c *Config) SESConfig() email.SESConfig {
	return email.SESConfig{
		Region:    c.Mail.AWSRegion,
		AccessKey: c.Mail.AWSAccessKey,
		SecretKey: c.Mail.AWSSecretKey,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping blanks. An unset or
// blank variable yields fallback.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
