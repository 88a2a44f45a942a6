package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

var (
	smtpHost = os.Getenv("SMTP_HOST")
	smtpPort = func() int {
		p, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if p == 0 {
			p = 587
		}
		return p
	}()
	smtpUser      = os.Getenv("SMTP_USER")
	smtpPass      = os.Getenv("SMTP_PASS")
	smtpFrom      = os.Getenv("SMTP_FROM") // e.g. "Planet Cred <no-reply@planetcred.org>"
	skipTLSVerify = os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1"
)

func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if smtpHost == "" || smtpFrom == "" {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", smtpFrom)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)

	// Mandatory STARTTLS on port 587 (Gmail/Office365 style relays).
	d.StartTLSPolicy = mail.MandatoryStartTLS

	d.TLSConfig = &tls.Config{
		ServerName:         smtpHost,
		InsecureSkipVerify: skipTLSVerify, // dev only: set SMTP_SKIP_TLS_VERIFY=1 to skip cert checks
	}

	return d.DialAndSend(m)
}
