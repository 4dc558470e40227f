package mail

import (
	"fmt"

	"github.com/jeffersoncargua/Pipeline-LineNatural/pkg/config"
	gomail "gopkg.in/gomail.v2"
)

// Message correo plano a despachar: destinatarios, asunto y cuerpo de texto.
type Message struct {
	To      []string
	Subject string
	Content string
}

// Sender despacha correos por SMTP.
type Sender struct {
	cfg config.SMTPConfig
}

// NewSender construye el sender con la configuración SMTP de la app.
func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send compone y envía un correo de texto plano. Las fallas de transporte se
// propagan como error; el caller decide si bloquean la respuesta o solo se loguean.
func (s *Sender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, "Notification")
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Content)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.UserName, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
