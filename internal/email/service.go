package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/dermacare/booking-api/internal/config"
	"github.com/dermacare/booking-api/internal/model"
)

type Service interface {
	SendBookingConfirmation(ctx context.Context, payload model.AppointmentEventPayload) error
	SendCancellation(ctx context.Context, payload model.AppointmentEventPayload) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendBookingConfirmation(_ context.Context, payload model.AppointmentEventPayload) error {
	subject := "Your appointment is confirmed"
	body := fmt.Sprintf(
		"Your appointment with %s at %s has been scheduled for %s at %s.",
		payload.DoctorName, payload.ClinicName, payload.Date, payload.Time,
	)
	return s.send(payload.PatientEmail, subject, body)
}

func (s *smtpService) SendCancellation(_ context.Context, payload model.AppointmentEventPayload) error {
	subject := "Your appointment was cancelled"
	body := fmt.Sprintf(
		"Your appointment with %s at %s on %s at %s has been cancelled.",
		payload.DoctorName, payload.ClinicName, payload.Date, payload.Time,
	)
	return s.send(payload.PatientEmail, subject, body)
}

func (s *smtpService) send(to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("no recipient email")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
