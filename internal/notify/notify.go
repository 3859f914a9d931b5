// Package notify emails administrators when import jobs start and finish.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"text/template"
	"time"

	"channel_importer/internal/domain"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

var bodyTemplate = template.Must(template.New("body").Parse(`Import job {{.JobID}} ({{.Kind}}) {{.Status}}.

Channels touched:       {{.ChannelsTouched}}
Videos imported:        {{.VideosImported}}
Transcripts downloaded: {{.TranscriptsDownloaded}}
Errors:                 {{.Errors}}
{{- if .Elapsed}}
Elapsed:                {{.Elapsed}}
{{- end}}
`))

type SMTPNotifier struct {
	addr   string
	auth   smtp.Auth
	from   string
	to     []string
	send   sendFunc
	now    func() time.Time
	logger *slog.Logger
}

func NewSMTPNotifier(cfg Config, logger *slog.Logger) *SMTPNotifier {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTPNotifier{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:   auth,
		from:   cfg.From,
		to:     cfg.To,
		send:   smtp.SendMail,
		now:    time.Now,
		logger: logger.With("component", "notify"),
	}
}

func (n *SMTPNotifier) JobStarted(ctx context.Context, m domain.JobMetrics) error {
	return n.deliver(ctx, fmt.Sprintf("Import job started: %s", m.Kind), m)
}

func (n *SMTPNotifier) JobCompleted(ctx context.Context, m domain.JobMetrics) error {
	return n.deliver(ctx, fmt.Sprintf("Import job %s: %d videos, %d transcripts", m.Status, m.VideosImported, m.TranscriptsDownloaded), m)
}

func (n *SMTPNotifier) deliver(ctx context.Context, subject string, m domain.JobMetrics) error {
	if len(n.to) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.Elapsed = m.Elapsed.Round(time.Second)

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, m); err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(n.to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", n.now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(strings.ReplaceAll(body.String(), "\n", "\r\n"))

	if err := n.send(n.addr, n.auth, n.from, n.to, msg.Bytes()); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.logger.Debug("notification sent", "job_id", m.JobID, "subject", subject)
	return nil
}

// Noop discards notifications.
type Noop struct{}

func (Noop) JobStarted(context.Context, domain.JobMetrics) error   { return nil }
func (Noop) JobCompleted(context.Context, domain.JobMetrics) error { return nil }
