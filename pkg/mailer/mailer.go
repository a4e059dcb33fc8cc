// Package mailer renders transactional email templates and delivers them over SMTP.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/noah-isme/hrms-saas-api/pkg/config"
)

// ErrUnknownTemplate is returned when Render receives a name with no template.
var ErrUnknownTemplate = errors.New("unknown email template")

// Template names.
const (
	TemplateTenantWelcome        = "tenant_welcome"
	TemplateUserWelcome          = "user_welcome"
	TemplateTemporaryPassword    = "temporary_password"
	TemplatePasswordReset        = "password_reset"
	TemplateTrialExpiring        = "trial_expiring"
	TemplateSubscriptionExpiring = "subscription_expiring"
)

// Message is a rendered email ready for delivery.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers rendered messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type entry struct {
	subject *template.Template
	body    *template.Template
}

// Renderer turns a template name and variables into a Message.
type Renderer struct {
	templates map[string]entry
}

// NewRenderer parses the built-in templates.
func NewRenderer() *Renderer {
	r := &Renderer{templates: make(map[string]entry, len(builtin))}
	for name, t := range builtin {
		r.templates[name] = entry{
			subject: template.Must(template.New(name + "_subject").Parse(t.subject)),
			body:    template.Must(template.New(name).Parse(layoutOpen + t.body + layoutClose)),
		}
	}
	return r
}

// Render executes the named template with vars.
func (r *Renderer) Render(name string, to []string, vars map[string]interface{}) (Message, error) {
	t, ok := r.templates[name]
	if !ok {
		return Message{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}
	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, vars); err != nil {
		return Message{}, fmt.Errorf("render %s subject: %w", name, err)
	}
	if err := t.body.Execute(&body, vars); err != nil {
		return Message{}, fmt.Errorf("render %s body: %w", name, err)
	}
	return Message{To: to, Subject: strings.TrimSpace(subject.String()), HTML: body.String()}, nil
}

// SMTPSender delivers mail through an SMTP relay with optional PLAIN auth.
type SMTPSender struct {
	addr     string
	host     string
	from     string
	auth     smtp.Auth
	timeout  time.Duration
	limiter  *rate.Limiter
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender builds a sender from mail configuration.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if _, err := mail.ParseAddress(cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	s := &SMTPSender{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		host:     cfg.Host,
		from:     cfg.From,
		timeout:  30 * time.Second,
		sendMail: smtp.SendMail,
	}
	if cfg.Username != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	if cfg.RatePerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	return s, nil
}

// Send writes msg to the relay. smtp.SendMail has no context support so the
// call runs in a goroutine bounded by ctx and the sender timeout.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("message has no recipients")
	}
	envelopeFrom := s.from
	if addr, err := mail.ParseAddress(s.from); err == nil {
		envelopeFrom = addr.Address
	}
	payload := s.build(msg)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("smtp throttle: %w", err)
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(s.addr, s.auth, envelopeFrom, msg.To, payload)
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

func (s *SMTPSender) build(msg Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return b.Bytes()
}
