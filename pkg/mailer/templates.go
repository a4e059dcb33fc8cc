package mailer

type source struct {
	subject string
	body    string
}

const layoutOpen = `<!DOCTYPE html><html><body style="font-family:Arial,sans-serif;color:#1f2933;max-width:600px;margin:0 auto;">`

const layoutClose = `<p style="color:#7b8794;font-size:12px;margin-top:32px;">This is an automated message from HRMS. Please do not reply.</p></body></html>`

var builtin = map[string]source{
	TemplateTenantWelcome: {
		subject: `Welcome to HRMS, {{.TenantName}}`,
		body: `<h2>Welcome aboard, {{.TenantName}}!</h2>
<p>Your organisation has been registered. An administrator account was created for <strong>{{.Email}}</strong>.</p>
<p>Temporary password: <code>{{.TemporaryPassword}}</code></p>
<p>You will be asked to choose a new password when you first <a href="{{.LoginURL}}">sign in</a>.</p>
{{if .TrialEndsAt}}<p>Your free trial runs until {{.TrialEndsAt}}.</p>{{end}}`,
	},
	TemplateUserWelcome: {
		subject: `Your HRMS account is ready`,
		body: `<h2>Hello {{.FirstName}},</h2>
<p>An account with role <strong>{{.Role}}</strong> was created for you.</p>
<p>Email: <strong>{{.Email}}</strong><br>Temporary password: <code>{{.TemporaryPassword}}</code></p>
<p>Please <a href="{{.LoginURL}}">sign in</a> and change your password.</p>`,
	},
	TemplateTemporaryPassword: {
		subject: `Your HRMS password was reset`,
		body: `<h2>Hello {{.FirstName}},</h2>
<p>An administrator reset your password.</p>
<p>Temporary password: <code>{{.TemporaryPassword}}</code></p>
<p>You must choose a new password after you <a href="{{.LoginURL}}">sign in</a>.</p>`,
	},
	TemplatePasswordReset: {
		subject: `Reset your HRMS password`,
		body: `<h2>Password reset requested</h2>
<p>Use the link below to choose a new password. It expires in {{.ExpiresInMinutes}} minutes and can be used once.</p>
<p><a href="{{.ResetURL}}">Reset password</a></p>
<p>If you did not request this, you can ignore this email.</p>`,
	},
	TemplateTrialExpiring: {
		subject: `Your HRMS trial ends on {{.EndDate}}`,
		body: `<h2>{{.TenantName}}, your trial is ending</h2>
<p>The {{.PlanName}} trial ends on <strong>{{.EndDate}}</strong> ({{.DaysRemaining}} days left).</p>
<p>Choose a plan before then to keep access for your team.</p>`,
	},
	TemplateSubscriptionExpiring: {
		subject: `Your HRMS subscription ends on {{.EndDate}}`,
		body: `<h2>{{.TenantName}}, your subscription is ending</h2>
<p>The {{.PlanName}} subscription ends on <strong>{{.EndDate}}</strong> ({{.DaysRemaining}} days left).</p>
{{if .AutoRenew}}<p>It will renew automatically.</p>{{else}}<p>Auto renewal is off. Renew to avoid interruption.</p>{{end}}`,
	},
}
