package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"strconv"
	"time"
)

type IMailService interface {
	SendVerificationEmail(to, code string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@devmatter.app"
	FromName string
	UseSSL   bool // true for SMTPS 465, false for STARTTLS 587

	AppName string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: "DevMatter",
		UseSSL:   os.Getenv("SMTP_USE_SSL") == "true",
		AppName:  "DevMatter",
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("verifyHTML").Parse(verificationHTMLTemplate))
	return &smtpMailService{cfg: cfg, htmlTpl: htmlTpl}, nil
}

type emailData struct {
	Code    string
	AppName string
	Year    int
}

func (s *smtpMailService) SendVerificationEmail(to, code string) error {
	var body bytes.Buffer
	if err := s.htmlTpl.Execute(&body, emailData{
		Code:    code,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	}); err != nil {
		return err
	}
	return s.send(to, "Verify your email", body.String())
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n", htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err = c.Auth(auth); err != nil {
			return err
		}
		if err = c.Mail(s.cfg.From); err != nil {
			return err
		}
		if err = c.Rcpt(to); err != nil {
			return err
		}
		w, err := c.Data()
		if err != nil {
			return err
		}
		if _, err = w.Write(msg.Bytes()); err != nil {
			return err
		}
		return w.Close()
	}

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

const verificationHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Verify your email</title>
</head>
<body style="font-family: -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; background:#0f172a; color:#f1f5f9; padding:40px 16px;">
  <div style="max-width:600px; margin:0 auto; background:#1e293b; border-radius:16px; padding:32px;">
    <div style="font-weight:700; font-size:22px; color:#60a5fa;">{{.AppName}}</div>
    <h1 style="font-size:28px;">Verify your email</h1>
    <p style="color:#cbd5e1; line-height:1.7;">Enter this code in the app to verify your email address:</p>
    <div style="font-size:32px; letter-spacing:6px; font-weight:700; padding:16px 0;">{{.Code}}</div>
    <p style="color:#94a3b8; font-size:13px;">The code expires in 10 minutes. If you did not create an account, you can safely ignore this email.</p>
    <p style="color:#94a3b8; font-size:13px;">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`
