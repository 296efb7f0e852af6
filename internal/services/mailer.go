package services

import (
	"fmt"
	"net/smtp"
)

// Mailer is the narrow boundary to outbound email. Tests swap in a fake.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail over plain-auth SMTP.
type SMTPMailer struct {
	Host     string
	Port     string
	From     string
	Password string
}

func NewSMTPMailer(host, port, from, password string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, From: from, Password: password}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.From, to, subject, body)
	auth := smtp.PlainAuth("", m.From, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(message))
}
