package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"codeforge-backend/internal/domain"
)

// SMTPConfig is the typed mail transport configuration for SMTP providers.
type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	TLSVerify bool
	Timeout   time.Duration
}

// SMTPSender delivers mail over SMTP, upgrading with STARTTLS when offered
// and using implicit TLS on port 465.
type SMTPSender struct {
	cfg  SMTPConfig
	now  func() time.Time
	dial func(ctx context.Context, network, addr string) (net.Conn, error)
}

// NewSMTPSender creates an SMTP sender.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	d := &net.Dialer{Timeout: cfg.Timeout}
	return &SMTPSender{cfg: cfg, now: time.Now, dial: d.DialContext}
}

// IsConfigured checks if the sender has usable SMTP credentials
func (s *SMTPSender) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != ""
}

func (s *SMTPSender) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName:         s.cfg.Host,
		InsecureSkipVerify: !s.cfg.TLSVerify, //nolint:gosec // opt-out via SMTP_TLS_VERIFY=false
		MinVersion:         tls.VersionTLS12,
	}
}

// Send delivers one message.
func (s *SMTPSender) Send(ctx context.Context, msg domain.NotificationMessage) error {
	if err := s.send(ctx, msg); err != nil {
		return transportErr("smtp", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) send(ctx context.Context, msg domain.NotificationMessage) error {
	raw, err := BuildMIME(msg, s.now())
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	conn, err := s.dial(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(s.now().Add(s.cfg.Timeout))
	}

	if s.cfg.Port == "465" {
		conn = tls.Client(conn, s.tlsConfig())
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(s.tlsConfig()); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return c.Quit()
}
