package mailer

import (
	"fmt"

	"storefront-service/src/pkg/log"

	"github.com/spf13/viper"
	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Mailer sends HTML mail via a primary SMTP host, falling back to a
// secondary host when the primary refuses.
type Mailer struct {
	From      string
	Primary   SMTPConfig
	Secondary SMTPConfig
	Log       log.Log
}

func NewMailer(v *viper.Viper, logger log.Log) *Mailer {
	return &Mailer{
		From: v.GetString("mail.from"),
		Primary: SMTPConfig{
			Host:     v.GetString("mail.smtp.host"),
			Port:     v.GetInt("mail.smtp.port"),
			Username: v.GetString("mail.smtp.username"),
			Password: v.GetString("mail.smtp.password"),
		},
		Secondary: SMTPConfig{
			Host:     v.GetString("mail.fallback.host"),
			Port:     v.GetInt("mail.fallback.port"),
			Username: v.GetString("mail.fallback.username"),
			Password: v.GetString("mail.fallback.password"),
		},
		Log: logger,
	}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.From)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	primary := gomail.NewDialer(m.Primary.Host, m.Primary.Port, m.Primary.Username, m.Primary.Password)
	if err := primary.DialAndSend(message); err == nil {
		return nil
	} else {
		m.Log.Error("mailer", fmt.Sprintf("Primary SMTP failed: %v", err), "Send", to)
	}

	if m.Secondary.Host == "" {
		return fmt.Errorf("primary SMTP failed and no fallback configured")
	}

	secondary := gomail.NewDialer(m.Secondary.Host, m.Secondary.Port, m.Secondary.Username, m.Secondary.Password)
	if err := secondary.DialAndSend(message); err != nil {
		m.Log.Error("mailer", fmt.Sprintf("Fallback SMTP failed: %v", err), "Send", to)
		return err
	}

	return nil
}
