package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/smtp"
	"time"

	"coworking_market/config"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the transport named by MAIL_TRANSPORT.
func NewMailer(settings config.Settings, log *logrus.Logger) (Mailer, error) {
	switch settings.MailTransport {
	case "gomail", "":
		return &GomailMailer{
			dialer: gomail.NewDialer(settings.SMTPHost, settings.SMTPPort, settings.SMTPUsername, settings.SMTPPassword),
		}, nil
	case "pool":
		addr := fmt.Sprintf("%s:%d", settings.SMTPHost, settings.SMTPPort)
		auth := smtp.PlainAuth("", settings.SMTPUsername, settings.SMTPPassword, settings.SMTPHost)
		pool, err := email.NewPool(addr, 4, auth)
		if err != nil {
			return nil, err
		}
		return &PoolMailer{pool: pool, timeout: 10 * time.Second}, nil
	case "log":
		return &LogMailer{log: log}, nil
	}
	return nil, fmt.Errorf("unknown mail transport %q", settings.MailTransport)
}

type GomailMailer struct {
	dialer *gomail.Dialer
}

func (m *GomailMailer) Send(_ context.Context, msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	for _, a := range msg.Attachments {
		data := a.Data
		gm.Attach(a.Filename,
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		)
	}

	return m.dialer.DialAndSend(gm)
}

// PoolMailer keeps a pool of authenticated SMTP connections open.
type PoolMailer struct {
	pool    *email.Pool
	timeout time.Duration
}

func (m *PoolMailer) Send(_ context.Context, msg Message) error {
	e := email.NewEmail()
	e.From = msg.From
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTML)

	for _, a := range msg.Attachments {
		if _, err := e.Attach(bytes.NewReader(a.Data), a.Filename, a.ContentType); err != nil {
			return err
		}
	}

	return m.pool.Send(e, m.timeout)
}

// LogMailer only logs messages, for local runs without SMTP.
type LogMailer struct {
	log *logrus.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.log.WithFields(logrus.Fields{
		"to":          msg.To,
		"subject":     msg.Subject,
		"attachments": len(msg.Attachments),
	}).Info("mail not delivered, log transport")
	return nil
}
