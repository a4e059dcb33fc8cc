package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/jobs"
	"github.com/noah-isme/hrms-saas-api/pkg/mailer"
)

// JobTypeEmail identifies queued email deliveries.
const JobTypeEmail = "email"

type jobEnqueuer interface {
	Enqueue(job jobs.Job) error
}

type mailRenderer interface {
	Render(name string, to []string, vars map[string]interface{}) (mailer.Message, error)
}

// EmailJob is the queued payload of an email delivery.
type EmailJob struct {
	Template string
	To       []string
	Vars     map[string]interface{}
}

// NotificationConfig controls outbound email.
type NotificationConfig struct {
	Enabled  bool
	LoginURL string
	ResetURL string
	ResetTTL time.Duration
}

// NotificationService queues transactional email. Every method is best-effort:
// failures are logged and never reach the caller.
type NotificationService struct {
	queue  jobEnqueuer
	cfg    NotificationConfig
	logger *zap.Logger
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(queue jobEnqueuer, cfg NotificationConfig, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = 15 * time.Minute
	}
	return &NotificationService{queue: queue, cfg: cfg, logger: logger}
}

// TenantWelcome greets a newly registered tenant and hands over the admin credentials.
func (s *NotificationService) TenantWelcome(tenant *models.Tenant, adminEmail, tempPassword string, trialEndsAt *time.Time) {
	vars := map[string]interface{}{
		"TenantName":        tenant.Name,
		"Email":             adminEmail,
		"TemporaryPassword": tempPassword,
		"LoginURL":          s.cfg.LoginURL,
	}
	if trialEndsAt != nil {
		vars["TrialEndsAt"] = trialEndsAt.Format("2 January 2006")
	}
	s.enqueue(mailer.TemplateTenantWelcome, uniqueRecipients(adminEmail, tenant.Email), vars)
}

// UserWelcome sends the temporary password of a newly provisioned user.
func (s *NotificationService) UserWelcome(email, firstName string, role models.UserRole, tempPassword string) {
	s.enqueue(mailer.TemplateUserWelcome, []string{email}, map[string]interface{}{
		"FirstName":         firstName,
		"Role":              string(role),
		"Email":             email,
		"TemporaryPassword": tempPassword,
		"LoginURL":          s.cfg.LoginURL,
	})
}

// TemporaryPassword tells a user an administrator reset their password.
func (s *NotificationService) TemporaryPassword(email, firstName, tempPassword string) {
	s.enqueue(mailer.TemplateTemporaryPassword, []string{email}, map[string]interface{}{
		"FirstName":         firstName,
		"TemporaryPassword": tempPassword,
		"LoginURL":          s.cfg.LoginURL,
	})
}

// PasswordReset mails the single-use reset link.
func (s *NotificationService) PasswordReset(email, token string) {
	s.enqueue(mailer.TemplatePasswordReset, []string{email}, map[string]interface{}{
		"ResetURL":         s.resetLink(token),
		"ExpiresInMinutes": int(s.cfg.ResetTTL / time.Minute),
	})
}

// SubscriptionExpiring warns tenant admins that a trial or paid subscription ends soon.
func (s *NotificationService) SubscriptionExpiring(sub models.ExpiringSubscription, to []string, now time.Time) {
	template := mailer.TemplateSubscriptionExpiring
	if sub.Status == models.SubscriptionTrial {
		template = mailer.TemplateTrialExpiring
	}
	vars := map[string]interface{}{
		"TenantName": sub.TenantName,
		"PlanName":   derefString(sub.PlanName),
		"AutoRenew":  sub.AutoRenew,
	}
	if sub.EndDate != nil {
		vars["EndDate"] = sub.EndDate.Format("2 January 2006")
		vars["DaysRemaining"] = daysUntil(now, *sub.EndDate)
	}
	s.enqueue(template, uniqueRecipients(append(append([]string{}, to...), sub.TenantEmail)...), vars)
}

func (s *NotificationService) resetLink(token string) string {
	sep := "?"
	if strings.Contains(s.cfg.ResetURL, "?") {
		sep = "&"
	}
	return s.cfg.ResetURL + sep + "token=" + url.QueryEscape(token)
}

func (s *NotificationService) enqueue(template string, to []string, vars map[string]interface{}) {
	if s == nil {
		return
	}
	if !s.cfg.Enabled || s.queue == nil {
		s.logger.Info("mail disabled, dropping email", zap.String("template", template), zap.Int("recipients", len(to)))
		return
	}
	if len(to) == 0 {
		return
	}
	job := jobs.Job{
		ID:      uuid.NewString(),
		Type:    JobTypeEmail,
		Payload: EmailJob{Template: template, To: to, Vars: vars},
	}
	if err := s.queue.Enqueue(job); err != nil {
		s.logger.Warn("failed to queue email", zap.String("template", template), zap.Error(err))
	}
}

// NewEmailHandler returns the queue handler that renders and delivers EmailJob payloads.
func NewEmailHandler(renderer mailRenderer, sender mailer.Sender, logger *zap.Logger) jobs.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, job jobs.Job) error {
		payload, ok := job.Payload.(EmailJob)
		if !ok {
			logger.Error("discarding email job with unexpected payload", zap.String("job_id", job.ID))
			return nil
		}
		msg, err := renderer.Render(payload.Template, payload.To, payload.Vars)
		if err != nil {
			// rendering is deterministic, retrying cannot help
			logger.Error("render email", zap.String("template", payload.Template), zap.Error(err))
			return nil
		}
		if err := sender.Send(ctx, msg); err != nil {
			return fmt.Errorf("deliver %s: %w", payload.Template, err)
		}
		logger.Info("email sent", zap.String("template", payload.Template), zap.Int("recipients", len(msg.To)))
		return nil
	}
}

func uniqueRecipients(addrs ...string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		key := strings.ToLower(strings.TrimSpace(a))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(a))
	}
	return out
}

// daysUntil counts whole calendar days from now to end, never negative.
func daysUntil(now, end time.Time) int {
	n := now.UTC().Truncate(24 * time.Hour)
	e := end.UTC().Truncate(24 * time.Hour)
	days := int(e.Sub(n).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
