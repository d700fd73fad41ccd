package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-screening-backend/config"
	"go-screening-backend/internal/domain"
)

// InviteService sends interview invitations to shortlisted candidates via SMTP
type InviteService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// inviteEmailData holds the data for one invitation message
type inviteEmailData struct {
	CandidateName string
	JobTitle      string
	Company       string
	MatchScore    string
}

// NewInviteService creates a new invitation mailer from SMTP configuration
func NewInviteService(cfg *config.Config) *InviteService {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &InviteService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
	}
}

const inviteEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Interview Invitation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .score { font-size: 20px; font-weight: bold; color: #0066cc; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Interview Invitation</h1>
        </div>
        <div class="content">
            <p>Dear {{.CandidateName}},</p>
            <p>Congratulations! Based on your impressive profile, we would like to
            invite you for an interview for the position of
            <strong>{{.JobTitle}}</strong>{{if .Company}} at {{.Company}}{{end}}.</p>
            <p>Match Score: <span class="score">{{.MatchScore}}</span></p>
            <p>Please confirm your availability for the interview.</p>
            <p>Best regards,<br>Recruitment Team</p>
        </div>
        <div class="footer">
            <p>This invitation was generated by the candidate screening system.</p>
        </div>
    </div>
</body>
</html>`

// SendInvite sends one templated interview invitation. A failure affects
// only this recipient; batch callers collect and continue.
func (s *InviteService) SendInvite(candidate domain.ShortlistedCandidate, jobTitle, company string) error {
	if candidate.Email == "" {
		return fmt.Errorf("candidate %d has no email address", candidate.CandidateID)
	}

	tmpl, err := template.New("invite").Parse(inviteEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	err = tmpl.Execute(&body, inviteEmailData{
		CandidateName: candidate.Name,
		JobTitle:      jobTitle,
		Company:       company,
		MatchScore:    fmt.Sprintf("%.2f%%", candidate.Score*100),
	})
	if err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Interview Invitation - %s", jobTitle)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		candidate.Email,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{candidate.Email}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", candidate.Email, err)
	}

	return nil
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (s *InviteService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
