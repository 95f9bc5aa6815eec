package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"commerce-actions/internal/infra"
	"commerce-actions/internal/pkg/config"
	"commerce-actions/internal/usecase/commands"

	"golang.org/x/time/rate"
)

// SMTP sends mail through a STARTTLS relay with PLAIN auth. Sends are
// throttled so a burst of bookings cannot trip the relay's rate limit.
type SMTP struct {
	addr      string
	host      string
	from      string
	auth      smtp.Auth
	limiter   *rate.Limiter
	tlsConfig *tls.Config
	logger    *slog.Logger
}

func NewSMTP(cfg config.SMTPConfig, logger *slog.Logger) *SMTP {
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	return &SMTP{
		addr:      cfg.Addr(),
		host:      cfg.Server,
		from:      cfg.User,
		auth:      smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Server),
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		tlsConfig: &tls.Config{ServerName: cfg.Server, MinVersion: tls.VersionTLS12},
		logger:    logger,
	}
}

func (s *SMTP) Send(ctx context.Context, msg commands.Email) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return infra.WrapAdapterErr(s.logger, infra.KindTimeout, "mail send throttled past deadline", err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return infra.WrapAdapterErr(s.logger, infra.KindUnavailable, "failed to connect to smtp server", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return infra.WrapAdapterErr(s.logger, infra.KindUnavailable, "smtp handshake failed", err)
	}
	defer c.Close()

	if err := s.deliver(c, msg); err != nil {
		return infra.WrapAdapterErr(s.logger, infra.KindWriteFailed, "failed to send email", err)
	}
	return nil
}

func (s *SMTP) deliver(c *smtp.Client, msg commands.Email) error {
	if err := c.StartTLS(s.tlsConfig); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err := c.Auth(s.auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Mail(s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(compose(s.from, msg)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return c.Quit()
}

func compose(from string, msg commands.Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
