package mailer

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. When SMTP is not configured the
// verification code is logged instead so local signup still works.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func New(host string, port int, user, pass, from string, log *logrus.Logger) *Mailer {
	m := &Mailer{from: from, log: log}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, user, pass)
	}
	return m
}

func (m *Mailer) SendVerificationCode(to, code string) error {
	if m.dialer == nil {
		m.log.WithFields(logrus.Fields{"to": to, "code": code}).
			Info("SMTP not configured, verification code logged")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Confirm your Glambook account")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Welcome to Glambook!\n\nYour verification code is: %s\n\nThe code expires in 24 hours.", code))

	return m.dialer.DialAndSend(msg)
}
