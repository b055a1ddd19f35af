package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"

	"clinicport-service/internal/app/drivers/mailer"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/dto/requests"
	"clinicport-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Relay consumes the mailer queue and delivers each payload over SMTP,
// throttled so a burst of signups cannot trip the SMTP provider's limits.
type Relay struct {
	Client  *mailer.SMTPClient
	Channel *amqp091.Channel
	Queue   string
	Limiter *rate.Limiter
	Log     *zap.Logger
}

func NewRelay(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string, sendRatePerSecond int, logger *zap.Logger) (*Relay, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}
	if sendRatePerSecond <= 0 {
		sendRatePerSecond = 1
	}
	return &Relay{
		Client:  client,
		Channel: channel,
		Queue:   queue,
		Limiter: rate.NewLimiter(rate.Limit(sendRatePerSecond), 1),
		Log:     logger,
	}, nil
}

// Run blocks consuming deliveries until ctx is cancelled. A payload that
// fails to decode is dropped; a payload the SMTP server rejects is requeued
// once and then dropped.
func (r *Relay) Run(ctx context.Context) error {
	deliveries, err := r.Channel.Consume(r.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	r.Log.Info("mailer relay started",
		zap.String(constvars.LoggingQueueKey, r.Queue),
	)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return amqp091.ErrClosed
			}
			r.handleDelivery(ctx, delivery)
		}
	}
}

func (r *Relay) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		r.Log.Error("mailer relay cannot decode payload, dropping",
			zap.String(constvars.LoggingQueueKey, r.Queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := r.Limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	if err := r.deliver(&payload); err != nil {
		requeue := !delivery.Redelivered
		r.Log.Error("mailer relay failed to send email",
			zap.String(constvars.LoggingEmailSubjectKey, payload.Subject),
			zap.Bool("requeue", requeue),
			zap.Error(err),
		)
		delivery.Nack(false, requeue)
		return
	}

	r.Log.Info("mailer relay sent email",
		zap.String(constvars.LoggingEmailSubjectKey, payload.Subject),
	)
	delivery.Ack(false)
}

func (r *Relay) deliver(payload *requests.EmailPayload) error {
	htmlBody := payload.HTMLCode
	if payload.Encoded {
		decoded, err := base64.StdEncoding.DecodeString(payload.HTMLCode)
		if err != nil {
			return err
		}
		htmlBody = string(decoded)
	}

	from := payload.From
	if from == "" {
		from = r.Client.EmailSender
	}

	recipients := append([]string{}, payload.To...)
	recipients = append(recipients, payload.Cc...)
	recipients = append(recipients, payload.Bcc...)

	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLFormat, strings.Join(payload.To, ","), payload.Subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", r.Client.Host, r.Client.Port)
	if err := smtp.SendMail(addr, r.Client.Auth, from, recipients, msg); err != nil {
		return exceptions.ErrSMTPSendEmail(err, r.Client.Host)
	}
	return nil
}
