package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/osgbtech/screening-api/pkg/messaging"
	"github.com/osgbtech/screening-api/pkg/metrics"
)

// OutboundMessage is one (phone, text) pair handed to the messaging
// collaborator. Transport is the collaborator's responsibility.
type OutboundMessage struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// EmailCopy mirrors an outbound message to a staff member's inbox.
type EmailCopy struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Service interface {
	Dispatch(ctx context.Context, msg *OutboundMessage) error
	DispatchEmail(ctx context.Context, msg *EmailCopy) error
}

type service struct {
	broker  messaging.Broker
	metrics *metrics.Metrics
}

func NewService(broker messaging.Broker, metrics *metrics.Metrics) Service {
	return &service{
		broker:  broker,
		metrics: metrics,
	}
}

func (s *service) Dispatch(ctx context.Context, msg *OutboundMessage) error {
	if msg.Phone == "" {
		return fmt.Errorf("recipient phone is required")
	}
	if msg.Text == "" {
		return fmt.Errorf("message text is required")
	}

	if err := s.broker.Publish(ctx, messaging.ChannelSMS, msg); err != nil {
		s.metrics.NotificationsFailed.Inc()
		return fmt.Errorf("failed to dispatch message: %w", err)
	}

	s.metrics.NotificationsDispatched.Inc()
	return nil
}

func (s *service) DispatchEmail(ctx context.Context, msg *EmailCopy) error {
	if msg.To == "" {
		return fmt.Errorf("recipient email is required")
	}

	if err := s.broker.Publish(ctx, messaging.ChannelEmail, msg); err != nil {
		s.metrics.NotificationsFailed.Inc()
		return fmt.Errorf("failed to dispatch email copy: %w", err)
	}

	s.metrics.NotificationsDispatched.Inc()
	return nil
}

// MessageData carries the fields a notification template may reference.
type MessageData struct {
	CompanyName string
	Title       string
	Date        string
	Time        string
}

// Compose fills a message template. Supported placeholders: {company},
// {title}, {date}, {time}.
func Compose(template string, data MessageData) string {
	replacer := strings.NewReplacer(
		"{company}", data.CompanyName,
		"{title}", data.Title,
		"{date}", data.Date,
		"{time}", data.Time,
	)
	return replacer.Replace(template)
}
