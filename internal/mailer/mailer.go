// Package mailer sends transactional mail over SMTP.
// Raw reset tokens are never passed to this package on their own; callers
// pass only the full reset URL, which is not logged here.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"time"

	"cinehub/internal/config"
)

type Client struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
	}
}

// SendPasswordResetEmail sends a password reset link to the user.
// resetURL contains the reset token embedded in the URL.
func (c *Client) SendPasswordResetEmail(ctx context.Context, toEmail, displayName, resetURL string) error {
	subject := "Reset your CineHub password"
	body := fmt.Sprintf(`Hello %s,

We received a request to reset your CineHub password.

Click the link below to set a new password:
%s

This link expires in 1 hour. If you didn't request a password reset, no action is needed.

— The CineHub Team`, displayName, resetURL)

	return c.send(ctx, toEmail, subject, body)
}

func (c *Client) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var message bytes.Buffer
	message.WriteString(fmt.Sprintf("From: %s\r\n", c.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", c.host, c.port)

	tlsConfig := &tls.Config{
		ServerName: c.host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, c.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if c.username != "" {
		auth := smtp.PlainAuth("", c.username, c.password, c.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(c.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := writer.Write(message.Bytes()); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close message body: %w", err)
	}

	return client.Quit()
}
