// Package email delivers rendered reports over SMTP.
package email

import (
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pistepick/pistepick/internal/render"
)

// ErrMissingCredentials is returned when the sender is constructed without
// an account or password.
var ErrMissingCredentials = errors.New("smtp credentials not configured")

// SenderConfig holds SMTP delivery settings.
type SenderConfig struct {
	// Host is the SMTP server hostname.
	Host string

	// Port is the SMTP submission port.
	Port int

	// From is the sending account, also used for authentication.
	From string

	// Password is the account password or app password.
	Password string

	// To is the recipient address.
	To string

	// Logger for delivery events.
	Logger zerolog.Logger
}

// Sender sends reports through an SMTP server with PLAIN auth over
// STARTTLS.
type Sender struct {
	config SenderConfig
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSender creates an SMTP sender. Returns ErrMissingCredentials when the
// account or password is empty.
func NewSender(cfg SenderConfig) (*Sender, error) {
	if cfg.From == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	return &Sender{config: cfg, send: smtp.SendMail}, nil
}

// Send delivers a rendered report as a multipart/alternative message so
// clients fall back to the plain text body.
func (s *Sender) Send(rep *render.RenderedReport) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.From, s.config.Password, s.config.Host)

	msg := buildMessage(s.config.From, s.config.To, rep)

	if err := s.send(addr, auth, s.config.From, []string{s.config.To}, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	s.config.Logger.Info().
		Str("to", s.config.To).
		Str("subject", rep.Subject).
		Msg("report email sent")
	return nil
}

const boundary = "pistepick-alt"

// buildMessage assembles a multipart/alternative MIME message with the
// text part first, per RFC 2046 ordering from least to most preferred.
func buildMessage(from, to string, rep *render.RenderedReport) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", rep.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(rep.BodyText)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(rep.BodyHTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return []byte(b.String())
}
