package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CampaignDeliveryPayload représente un email de campagne à livrer à un
// abonné. Le sujet et le corps sont dupliqués dans chaque message pour que
// le worker n'ait pas à relire la campagne en base.
type CampaignDeliveryPayload struct {
	CampaignID string `json:"campaign_id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name,omitempty"`
	Subject    string `json:"subject"`
	BodyHTML   string `json:"body_html"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishDelivery(ctx context.Context, payload CampaignDeliveryPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erreur de sérialisation du payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // message durable
		},
	)
	if err != nil {
		return fmt.Errorf("publication RabbitMQ échouée: %w", err)
	}

	return nil
}
