package messaging

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"net/textproto"
	"os"
	"strconv"
	"strings"

	"toolbelt-go/pkg/tools/core"
)

// EmailConfig holds SMTP settings for the send_email tool. Credentials
// are never stored here, only the names of the environment variables
// that carry them.
type EmailConfig struct {
	SMTPHost string
	SMTPPort int
	UserEnv  string
	PassEnv  string
}

// DefaultEmailConfig returns settings for Gmail with an app password.
func DefaultEmailConfig() EmailConfig {
	return EmailConfig{
		SMTPHost: "smtp.gmail.com",
		SMTPPort: 587,
		UserEnv:  "GMAIL_USER",
		PassEnv:  "GMAIL_PASS",
	}
}

// EmailInput represents parameters for the send_email tool
type EmailInput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	CC      string `json:"cc,omitempty"`
}

// EmailTool sends plain-text email through an SMTP relay
type EmailTool struct {
	core.BaseToolImpl
	config EmailConfig
}

// NewEmailTool creates a new email tool. Zero-value config fields fall
// back to the Gmail defaults.
func NewEmailTool(config EmailConfig) *EmailTool {
	defaults := DefaultEmailConfig()
	if config.SMTPHost == "" {
		config.SMTPHost = defaults.SMTPHost
	}
	if config.SMTPPort == 0 {
		config.SMTPPort = defaults.SMTPPort
	}
	if config.UserEnv == "" {
		config.UserEnv = defaults.UserEnv
	}
	if config.PassEnv == "" {
		config.PassEnv = defaults.PassEnv
	}

	tool := &EmailTool{config: config}
	tool.BaseToolImpl = *core.NewBaseTool(
		"send_email",
		"Send an email through the configured SMTP account",
		"messaging",
		map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"to": map[string]interface{}{
					"type":        "string",
					"description": "Recipient email address",
				},
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Email subject line",
				},
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Email body text",
				},
				"cc": map[string]interface{}{
					"type":        "string",
					"description": "Optional CC email address",
				},
			},
			"required": []string{"to", "subject", "message"},
		},
	)
	return tool
}

// Execute sends the email and reports the outcome
func (t *EmailTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var params EmailInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input for send_email tool: %w", err)
	}

	if params.To == "" {
		return nil, fmt.Errorf("%w: to is required", core.ErrInvalidInput)
	}
	if params.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", core.ErrInvalidInput)
	}
	if params.Message == "" {
		return nil, fmt.Errorf("%w: message is required", core.ErrInvalidInput)
	}

	user := os.Getenv(t.config.UserEnv)
	pass := os.Getenv(t.config.PassEnv)
	if user == "" || pass == "" {
		return nil, fmt.Errorf("%w: set %s and %s to send email", core.ErrCredentialMissing, t.config.UserEnv, t.config.PassEnv)
	}

	recipients := []string{params.To}
	if params.CC != "" {
		recipients = append(recipients, params.CC)
	}

	msg := buildMessage(user, params)
	if err := t.send(ctx, user, pass, recipients, msg); err != nil {
		return nil, err
	}

	return fmt.Sprintf("Email sent successfully to %s", params.To), nil
}

// buildMessage assembles RFC 5322 headers and the plain-text body.
func buildMessage(from string, params EmailInput) []byte {
	var msg strings.Builder

	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", params.To)
	if params.CC != "" {
		fmt.Fprintf(&msg, "Cc: %s\r\n", params.CC)
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", params.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(params.Message)

	return []byte(msg.String())
}

func (t *EmailTool) send(ctx context.Context, user, pass string, recipients []string, msg []byte) error {
	addr := net.JoinHostPort(t.config.SMTPHost, strconv.Itoa(t.config.SMTPPort))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: connecting to %s: %v", core.ErrRemoteCall, addr, err)
	}

	client, err := smtp.NewClient(conn, t.config.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: SMTP handshake with %s: %v", core.ErrRemoteCall, addr, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: t.config.SMTPHost}); err != nil {
			return fmt.Errorf("%w: STARTTLS with %s: %v", core.ErrRemoteCall, addr, err)
		}
	}

	auth := smtp.PlainAuth("", user, pass, t.config.SMTPHost)
	if err := client.Auth(auth); err != nil {
		if isAuthError(err) {
			return fmt.Errorf("%w: check your %s and %s credentials", ErrAuthentication, t.config.UserEnv, t.config.PassEnv)
		}
		return smtpError(addr, err)
	}

	if err := client.Mail(user); err != nil {
		return smtpError(addr, err)
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return smtpError(addr, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return smtpError(addr, err)
	}
	if _, err := w.Write(msg); err != nil {
		return smtpError(addr, err)
	}
	if err := w.Close(); err != nil {
		return smtpError(addr, err)
	}

	if err := client.Quit(); err != nil {
		return smtpError(addr, err)
	}
	return nil
}

// isAuthError reports whether the server refused our credentials, as
// opposed to some other protocol failure.
func isAuthError(err error) bool {
	var tpErr *textproto.Error
	if !errors.As(err, &tpErr) {
		return false
	}
	switch tpErr.Code {
	case 530, 534, 535, 538:
		return true
	}
	return false
}

func smtpError(addr string, err error) error {
	return fmt.Errorf("%w: SMTP error from %s: %v", core.ErrRemoteCall, addr, err)
}
