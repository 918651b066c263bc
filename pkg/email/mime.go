package email

import (
	"bytes"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"codeforge-backend/internal/domain"

	"github.com/google/uuid"
)

// BuildMIME renders msg as an RFC 5322 message with a multipart/alternative body.
func BuildMIME(msg domain.NotificationMessage, now time.Time) ([]byte, error) {
	return buildMIME(msg, now, "codeforge_"+strings.ReplaceAll(uuid.NewString(), "-", ""), uuid.NewString())
}

func buildMIME(msg domain.NotificationMessage, now time.Time, boundary, messageID string) ([]byte, error) {
	if msg.To == "" {
		return nil, fmt.Errorf("message has no recipient")
	}

	var buf bytes.Buffer
	writeHeader := func(k, v string) {
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(v)
		buf.WriteString("\r\n")
	}

	writeHeader("From", formatAddress(msg.FromName, msg.From))
	writeHeader("To", formatAddress("", msg.To))
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", formatAddress("", msg.ReplyTo))
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", sanitizeHeader(msg.Subject)))
	writeHeader("Date", now.Format(time.RFC1123Z))
	writeHeader("Message-ID", fmt.Sprintf("<%s@%s>", messageID, domainOf(msg.From)))
	writeHeader("MIME-Version", "1.0")

	if msg.TextBody == "" {
		writeHeader("Content-Type", "text/html; charset=UTF-8")
		writeHeader("Content-Transfer-Encoding", "quoted-printable")
		buf.WriteString("\r\n")
		if err := writeQuotedPrintable(&buf, msg.Body); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	buf.WriteString("\r\n")

	parts := []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", msg.TextBody},
		{"text/html; charset=UTF-8", msg.Body},
	}
	for _, p := range parts {
		buf.WriteString("--" + boundary + "\r\n")
		writeHeader("Content-Type", p.contentType)
		writeHeader("Content-Transfer-Encoding", "quoted-printable")
		buf.WriteString("\r\n")
		if err := writeQuotedPrintable(&buf, p.body); err != nil {
			return nil, err
		}
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes(), nil
}

func writeQuotedPrintable(buf *bytes.Buffer, body string) error {
	w := quotedprintable.NewWriter(buf)
	if _, err := w.Write([]byte(body)); err != nil {
		return fmt.Errorf("failed to encode body: %w", err)
	}
	return w.Close()
}

func formatAddress(name, addr string) string {
	a := mail.Address{Name: sanitizeHeader(name), Address: sanitizeHeader(addr)}
	return a.String()
}

// sanitizeHeader drops CR and LF so user input cannot start a new header line.
func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func domainOf(addr string) string {
	if i := strings.LastIndexByte(addr, '@'); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}
