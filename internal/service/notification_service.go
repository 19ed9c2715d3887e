package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/events"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/mail"
)

// NotificationService sends transactional email in response to
// inquiry events. Delivery is best-effort: failures are logged and
// never surface to the request that published the event.
type NotificationService struct {
	dispatcher events.Dispatcher
	sender     mail.Sender
	logger     *zap.Logger
	cfg        config.MailConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, sender mail.Sender, logger *zap.Logger, cfg config.MailConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		sender:     sender,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInquiryCreated, n.handleInquiryCreated)
	n.dispatcher.Subscribe(events.EventInquiryReplied, n.handleInquiryReplied)
}

// handleInquiryCreated sends the owner notice followed by the
// submitter confirmation.
func (n *NotificationService) handleInquiryCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryCreatedPayload)
	if !ok {
		n.logger.Warn("unexpected payload for inquiry_created", zap.String("event_id", event.ID))
		return nil
	}
	inquiry := payload.Inquiry

	if !n.sender.Enabled() {
		return nil
	}

	if n.cfg.AdminEmail == "" {
		n.logger.Warn("ADMIN_EMAIL not configured; skipping owner notification",
			zap.String("inquiry_id", inquiry.ID))
	} else {
		err := n.sender.Send(ctx,
			n.cfg.AdminEmail,
			mail.OwnerNotificationSubject(inquiry),
			mail.OwnerNotificationBody(inquiry, n.cfg.SiteName))
		if err != nil {
			n.logger.Warn("owner notification not sent",
				zap.String("inquiry_id", inquiry.ID), zap.Error(err))
		}
	}

	err := n.sender.Send(ctx,
		inquiry.Email,
		mail.ConfirmationSubject(n.cfg.SiteName),
		mail.ConfirmationBody(inquiry.Name, n.cfg.SiteName))
	if err != nil {
		n.logger.Warn("confirmation email not sent",
			zap.String("inquiry_id", inquiry.ID), zap.Error(err))
	}
	return nil
}

// handleInquiryReplied forwards the admin's message to the submitter.
func (n *NotificationService) handleInquiryReplied(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InquiryRepliedPayload)
	if !ok {
		n.logger.Warn("unexpected payload for inquiry_replied", zap.String("event_id", event.ID))
		return nil
	}
	inquiry := payload.Inquiry

	if !n.sender.Enabled() {
		return nil
	}

	err := n.sender.Send(ctx,
		inquiry.Email,
		mail.ReplySubject(n.cfg.SiteName),
		mail.ReplyBody(inquiry.Name, payload.AdminMessage, n.cfg.SiteName))
	if err != nil {
		n.logger.Warn("reply email not sent",
			zap.String("inquiry_id", inquiry.ID), zap.Error(err))
	}
	return nil
}
