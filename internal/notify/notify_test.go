package notify

import (
	"context"
	"errors"
	"log/slog"
	"net/smtp"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel_importer/internal/domain"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestNotifier(to []string, sent *[]sentMail, err error) *SMTPNotifier {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	n := NewSMTPNotifier(Config{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "importer",
		Password: "secret",
		From:     "importer@example.com",
		To:       to,
	}, logger)
	n.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return err
	}
	return n
}

func TestSMTPNotifier_JobCompleted(t *testing.T) {
	var sent []sentMail
	n := newTestNotifier([]string{"admin@example.com", "ops@example.com"}, &sent, nil)

	err := n.JobCompleted(context.Background(), domain.JobMetrics{
		JobID:                 "job-1",
		Kind:                  domain.JobKindSweep,
		Status:                domain.JobPartial,
		ChannelsTouched:       3,
		VideosImported:        12,
		TranscriptsDownloaded: 9,
		Errors:                1,
		Elapsed:               4*time.Minute + 1500*time.Millisecond,
	})
	require.NoError(t, err)

	require.Len(t, sent, 1)
	mail := sent[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, "importer@example.com", mail.from)
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, mail.to)

	assert.Contains(t, mail.msg, "To: admin@example.com, ops@example.com\r\n")
	assert.Contains(t, mail.msg, "Subject: Import job partial: 12 videos, 9 transcripts\r\n")
	assert.Contains(t, mail.msg, "Import job job-1 (sweep) partial.")
	assert.Contains(t, mail.msg, "Channels touched:       3\r\n")
	assert.Contains(t, mail.msg, "Errors:                 1\r\n")
	assert.Contains(t, mail.msg, "Elapsed:                4m2s")
}

func TestSMTPNotifier_JobStartedOmitsElapsed(t *testing.T) {
	var sent []sentMail
	n := newTestNotifier([]string{"admin@example.com"}, &sent, nil)

	require.NoError(t, n.JobStarted(context.Background(), domain.JobMetrics{JobID: "job-2", Kind: domain.JobKindChannel, Status: domain.JobRunning}))

	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].msg, "Subject: Import job started: channel\r\n")
	assert.NotContains(t, sent[0].msg, "Elapsed")
}

func TestSMTPNotifier_NoRecipients(t *testing.T) {
	var sent []sentMail
	n := newTestNotifier(nil, &sent, nil)

	require.NoError(t, n.JobStarted(context.Background(), domain.JobMetrics{}))
	assert.Empty(t, sent)
}

func TestSMTPNotifier_SendFailure(t *testing.T) {
	var sent []sentMail
	n := newTestNotifier([]string{"admin@example.com"}, &sent, errors.New("connection refused"))

	err := n.JobCompleted(context.Background(), domain.JobMetrics{})
	assert.ErrorContains(t, err, "connection refused")
}
