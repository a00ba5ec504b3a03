package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendGeneratedMaterial(toEmail, toolTitle, subject, resultText string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendGeneratedMaterial(toEmail, toolTitle, subject, resultText string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)

	title := toolTitle
	if subject != "" {
		title = fmt.Sprintf("%s — %s", toolTitle, subject)
	}
	m.SetHeader("Subject", title)

	// O material chega em markdown; <pre> preserva a estrutura sem exigir
	// um renderizador no e-mail.
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>Material gerado pelo ProfAI:</p>
			<pre style="white-space: pre-wrap; background: #f8faff; padding: 16px; border-radius: 8px;">%s</pre>
		</div>
	`, title, htmlEscape(resultText))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send material to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Material sent to %s\n", toEmail)
	return nil
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
