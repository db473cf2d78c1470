package utils

import (
	"fmt"
	"net/smtp"

	"github.com/Vorongor/users-api/internal/config"
)

// SMTPClient sends mail through a transport configured at startup.
type SMTPClient struct {
	cfg config.SMTP

	// baseURL is the public origin verification links point at.
	baseURL string
}

func NewSMTPClient(cfg config.SMTP, baseURL string) *SMTPClient {
	return &SMTPClient{cfg: cfg, baseURL: baseURL}
}

func (s *SMTPClient) Send(to, subject, body string) error {
	if s == nil || s.cfg.Host == "" || s.cfg.User == "" {
		return fmt.Errorf("smtp not configured")
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" + body + "\r\n")
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
}

// SendVerificationEmail makes a single delivery attempt; the transport's
// error, if any, is returned as-is. No retry, no queueing.
func (s *SMTPClient) SendVerificationEmail(to, verificationToken string) error {
	return s.Send(to, "Email Verification", VerificationEmailBody(s.baseURL, verificationToken))
}

// VerificationEmailBody renders the fixed plaintext template around the
// verification link.
func VerificationEmailBody(baseURL, verificationToken string) string {
	link := fmt.Sprintf("%s/auth/verify/%s", baseURL, verificationToken)
	return fmt.Sprintf("Click the following link to verify your email: %s", link)
}
