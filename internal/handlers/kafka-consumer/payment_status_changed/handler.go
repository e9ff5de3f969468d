package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"foodnow/internal/entities"
	"foodnow/internal/service/orderstatus"
	"foodnow/pkg/logger"
)

// paymentEvent is the wire shape of one payments.status.changed message.
type paymentEvent struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payments.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payments.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim should stop (context cancelled, the message stays unmarked and
// will be redelivered) and false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paymentEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payments.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payments.status.changed processing")

	err = h.paymentService.ProcessPaymentEvent(ctx, entities.PaymentEvent{
		OrderID:   event.OrderID,
		Status:    entities.PaymentStatusType(event.Status),
		Reference: event.Reference,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payments.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderstatus.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payments.status.changed handler order already moved on")

		case errors.Is(err, orderstatus.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payments.status.changed handler order not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payments.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payments.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
