package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"

	"github.com/cougarhub/cougarhub-backend/internal/config"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		client:   resend.NewClient(cfg.Email.APIKey),
		from:     cfg.Email.FromAddress,
		fromName: cfg.Email.FromName,
	}
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	html := fmt.Sprintf(`
		<h2>Welcome to CougarHub, %s!</h2>
		<p>Your account is ready. Browse clubs, RSVP to events, and if you're
		a club officer, set up your club's page and start posting events.</p>
	`, name)

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to CougarHub!",
		Html:    html,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
