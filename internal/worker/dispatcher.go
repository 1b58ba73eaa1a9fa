package worker

import (
	"context"
	"encoding/json"

	"github.com/osgbtech/screening-api/internal/email"
	"github.com/osgbtech/screening-api/internal/service/notification"
	"github.com/osgbtech/screening-api/pkg/logger"
	"github.com/osgbtech/screening-api/pkg/messaging"
)

// Dispatcher delivers queued email copies of staff notifications. SMS and
// document channels are consumed by their own gateways; this worker only
// owns the email leg.
type Dispatcher struct {
	broker   messaging.Broker
	emailSvc email.Service
	logger   *logger.Logger
}

func NewDispatcher(broker messaging.Broker, emailSvc email.Service, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		broker:   broker,
		emailSvc: emailSvc,
		logger:   logger,
	}
}

func (d *Dispatcher) Start(ctx context.Context) error {
	messages, err := d.broker.Subscribe(ctx, messaging.ChannelEmail)
	if err != nil {
		return err
	}

	d.logger.Info("Starting notification dispatcher")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Shutting down notification dispatcher")
			return nil
		case payload, ok := <-messages:
			if !ok {
				return nil
			}
			d.deliver(ctx, payload)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, payload []byte) {
	var msg notification.EmailCopy
	if err := json.Unmarshal(payload, &msg); err != nil {
		d.logger.Error(err, "Failed to decode email message")
		return
	}

	if err := d.emailSvc.SendCustom(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		// One failed delivery never blocks the rest of the queue.
		d.logger.Error(err, "Failed to deliver email", "to", msg.To)
		return
	}

	d.logger.Debug("Delivered email", "to", msg.To)
}
