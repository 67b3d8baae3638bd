package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/config"
	"github.com/spec-kit/restaurant-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLoginCodeIssued, n.handleLoginCodeIssued)
	n.dispatcher.Subscribe(events.EventOrderOpened, n.handleOrderOpened)
	n.dispatcher.Subscribe(events.EventDishOrdered, n.handleDishOrdered)
	n.dispatcher.Subscribe(events.EventOrderClosed, n.handleOrderClosed)
}

func (n *NotificationService) handleLoginCodeIssued(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.LoginCodeIssuedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("LoginCodeIssued", zap.String("phone", maskPhone(payload.Phone)))
	n.sendSMSStub(ctx, payload)
	return nil
}

func (n *NotificationService) handleOrderOpened(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderOpened", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handleDishOrdered(ctx context.Context, event events.Event) error {
	n.logger.Info("DishOrdered", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) handleOrderClosed(ctx context.Context, event events.Event) error {
	n.logger.Info("OrderClosed", zap.Any("payload", event.Payload))
	n.sendWebhookStub(ctx, event)
	return nil
}

func (n *NotificationService) sendSMSStub(_ context.Context, payload events.LoginCodeIssuedPayload) {
	if strings.TrimSpace(n.cfg.SMSFrom) == "" {
		return
	}
	n.logger.Debug("sendSMSStub",
		zap.String("from", n.cfg.SMSFrom),
		zap.String("to", maskPhone(payload.Phone)),
		zap.String("code", payload.Code))
}

func (n *NotificationService) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
