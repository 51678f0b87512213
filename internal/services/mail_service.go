package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"globetrotter/internal/config"
	"globetrotter/pkg/logger"
)

type IMailService interface {
	SendPasswordReset(ctx context.Context, to, name, token string) error
}

type EmailData struct {
	Title     string
	Greeting  string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="margin:0;padding:32px 16px;background:#f1f5f9;font-family:Helvetica,Arial,sans-serif;color:#0f172a">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px">
    <div style="font-weight:700;font-size:18px;margin-bottom:24px">{{.AppName}}</div>
    <h1 style="font-size:22px;margin:0 0 12px">{{.Title}}</h1>
    {{if .Greeting}}<p>{{.Greeting}}</p>{{end}}
    <p style="line-height:1.6">{{.Intro}}</p>
    {{if .ButtonURL}}
    <p style="margin:28px 0"><a href="{{.ButtonURL}}" style="background:#0ea5e9;color:#ffffff;padding:12px 20px;border-radius:8px;text-decoration:none">{{.ButtonTxt}}</a></p>
    <p style="font-size:12px;color:#64748b">If the button doesn't work, open this link: {{.ButtonURL}}</p>
    {{end}}
    <p style="font-size:12px;color:#94a3b8;margin-top:32px">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{if .Greeting}}{{.Greeting}}

{{end}}{{.Intro}}
{{if .ButtonURL}}
Open this link:
{{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

var (
	htmlMailTpl = template.Must(template.New("html").Parse(baseHTMLTemplate))
	textMailTpl = template.Must(template.New("text").Parse(plainTextTemplate))
)

func renderEmail(data EmailData) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := htmlMailTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := textMailTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func resetLink(baseURL, token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
}

func resetEmailData(appName, baseURL, name, token string) EmailData {
	greeting := ""
	if strings.TrimSpace(name) != "" {
		greeting = "Hi " + strings.TrimSpace(name) + ","
	}
	return EmailData{
		Title:     "Reset your password",
		Greeting:  greeting,
		Intro:     "We received a request to reset your password. The link below is valid for one hour. If you didn't ask for this you can ignore this email.",
		ButtonURL: resetLink(baseURL, token),
		ButtonTxt: "Reset password",
		AppName:   appName,
		Year:      time.Now().Year(),
	}
}

// NewMailService picks SMTP when configured and a logging sender otherwise.
func NewMailService(cfg config.Config, log *logger.Logger) IMailService {
	if cfg.SMTP.Enabled() {
		return &smtpMailService{smtp: cfg.SMTP, appName: cfg.AppName, baseURL: cfg.AppBaseURL}
	}
	log.Warn("SMTP not configured, reset emails will only be logged")
	return &logMailService{appName: cfg.AppName, baseURL: cfg.AppBaseURL, log: log.With("service", "MailService")}
}

type smtpMailService struct {
	smtp    config.SMTPConfig
	appName string
	baseURL string
}

func (s *smtpMailService) SendPasswordReset(ctx context.Context, to, name, token string) error {
	data := resetEmailData(s.appName, s.baseURL, name, token)
	html, text, err := renderEmail(data)
	if err != nil {
		return err
	}
	return s.send(ctx, to, data.Title, html, text)
}

func (s *smtpMailService) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)
	write("--%s--\r\n", boundary)

	addr := net.JoinHostPort(s.smtp.Host, fmt.Sprint(s.smtp.Port))
	tlsCfg := &tls.Config{ServerName: s.smtp.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	if s.smtp.UseSSL {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.smtp.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.smtp.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return fmt.Errorf("smtp server does not support STARTTLS")
		}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}
	if s.smtp.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.smtp.Username, s.smtp.Password, s.smtp.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.smtp.From); err != nil {
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

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.smtp.FromName)
	if name == "" {
		return s.smtp.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.smtp.From)
}

type logMailService struct {
	appName string
	baseURL string
	log     *logger.Logger
}

func (s *logMailService) SendPasswordReset(_ context.Context, to, _ string, token string) error {
	s.log.Info("Password reset email (not sent)", "to", to, "link", resetLink(s.baseURL, token))
	return nil
}
