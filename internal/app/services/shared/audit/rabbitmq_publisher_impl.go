package audit

import (
	"cardioflow-service/internal/app/models"
	"cardioflow-service/internal/pkg/constvars"
	"cardioflow-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
	queueName  string
}

func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string) AuditPublisher {
	return &rabbitMQPublisher{
		connection: connection,
		queueName:  queueName,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.AuditEvent) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishAuditEvent)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishAuditEvent)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPublishAuditEvent)
	}

	return nil
}
