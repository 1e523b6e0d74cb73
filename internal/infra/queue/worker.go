package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/rhpartnersafric/website-api/internal/infra/http/middleware"
)

// CampaignMailer est le contrat SMTP vu du worker.
type CampaignMailer interface {
	SendCampaign(to, name, subject, bodyHTML string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  CampaignMailer
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, mailer CampaignMailer, logger *zap.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
		Logger:  logger,
	}
}

// Start consomme la file des livraisons et envoie un email par message.
// Ack en cas de succès; Nack sans requeue sinon, le message part en DLQ.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manuel, plus sûr)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Logger.Fatal("enregistrement du consommateur RabbitMQ échoué", zap.Error(err))
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload CampaignDeliveryPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				w.Logger.Error("message de livraison illisible", zap.Error(err))
				// Message malformé: rejet sans requeue pour ne pas bloquer la file.
				d.Nack(false, false)
				continue
			}

			if err := w.handleDelivery(payload); err != nil {
				w.Logger.Error("envoi de campagne échoué",
					zap.String("campaign_id", payload.CampaignID),
					zap.String("email", payload.Email),
					zap.Error(err))
				middleware.RecordCampaignDelivery("failed")
				d.Nack(false, false)
			} else {
				w.Logger.Info("email de campagne envoyé",
					zap.String("campaign_id", payload.CampaignID),
					zap.String("email", payload.Email))
				middleware.RecordCampaignDelivery("sent")
				d.Ack(false)
			}
		}
	}()

	w.Logger.Info("worker de livraison en attente", zap.String("queue", queueName))
	<-forever
}

func (w *Worker) handleDelivery(payload CampaignDeliveryPayload) error {
	return w.Mailer.SendCampaign(payload.Email, payload.FullName, payload.Subject, payload.BodyHTML)
}
