package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/motel/domain"
)

// SMTPMailer notifies motel owners about moderation decisions.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPMailer(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, password: password}
}

func (m *SMTPMailer) SendStatusChanged(toEmail, motelName string, status domain.Status) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Listing %q: %s", motelName, statusLine(status)))
	msg.SetBody("text/plain", fmt.Sprintf("Your listing %q %s.", motelName, statusBody(status)))

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}

func statusLine(status domain.Status) string {
	switch status {
	case domain.StatusApproved:
		return "approved"
	case domain.StatusPaused:
		return "paused"
	default:
		return "pending review"
	}
}

func statusBody(status domain.Status) string {
	switch status {
	case domain.StatusApproved:
		return "was approved and is now visible in the directory"
	case domain.StatusPaused:
		return "was paused and is hidden from the directory"
	default:
		return "is pending review"
	}
}
