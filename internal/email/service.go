package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/osgbtech/screening-api/internal/config"
)

type Service interface {
	SendCustom(ctx context.Context, to string, subject string, content string) error
}

type gomailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewService(cfg config.SMTPConfig) Service {
	return &gomailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (s *gomailService) SendCustom(_ context.Context, to, subject, content string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", content)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
