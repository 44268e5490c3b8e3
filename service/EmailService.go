package service

import (
	"crypto/tls"
	"fmt"
	"html"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"eibs-cms/model"
)

// EmailService sends the new-contact-submission notification. When SMTP is
// not configured it is a no-op; the contact endpoint never depends on it.
type EmailService struct {
	dialer  *gomail.Dialer
	sender  string
	notify  string
	enabled bool
}

func NewEmailService() *EmailService {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	sender := os.Getenv("SMTP_SENDER_NAME")
	notify := os.Getenv("CONTACT_NOTIFY_EMAIL")

	if host == "" || notify == "" {
		return &EmailService{enabled: false}
	}

	port, _ := strconv.Atoi(portStr)

	dialer := gomail.NewDialer(host, port, user, pass)
	dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return &EmailService{
		dialer:  dialer,
		sender:  sender,
		notify:  notify,
		enabled: true,
	}
}

// NotifyContactSubmission emails the site owners about a new submission.
// Runs in the background; failures are logged, never surfaced to the
// submitting visitor.
func (s *EmailService) NotifyContactSubmission(sub *model.ContactSubmission) {
	if !s.enabled {
		return
	}
	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", fmt.Sprintf("%s <%s>", s.sender, s.dialer.Username))
		m.SetHeader("To", s.notify)
		m.SetHeader("Subject", fmt.Sprintf("New contact submission from %s", sub.Name))

		body := fmt.Sprintf(`
			<div style="font-family: Arial, sans-serif; padding: 20px;">
				<h2>New contact submission</h2>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Email:</strong> %s</p>
				<p>%s</p>
			</div>
		`, html.EscapeString(sub.Name), html.EscapeString(sub.Email), html.EscapeString(sub.Message))
		m.SetBody("text/html", body)

		if err := s.dialer.DialAndSend(m); err != nil {
			log.Printf("failed to send contact notification for %s: %v", sub.ID, err)
		}
	}()
}
