package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

// Config настройки уведомлений
type Config struct {
	OwnerContact       string
	NotifyCustomer     bool
	NotifyOwner        bool
	NotifyCancellation bool
	SendTimeout        time.Duration
}

// Service отправляет уведомления о бронированиях
// Ошибки доставки логируются и учитываются в метриках, но не возвращаются:
// к моменту обработки события бронирование уже зафиксировано
type Service struct {
	sender  Sender
	config  Config
	metrics MetricsRecorder
	logger  Logger
}

// NewService создает сервис уведомлений
func NewService(sender Sender, config Config, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		sender:  sender,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// Name имя обработчика событий
func (s *Service) Name() string {
	return "notifications"
}

// Handle обрабатывает событие расписания
func (s *Service) Handle(ctx context.Context, event domain.BookingEvent) {
	switch event.Type {
	case domain.EventBookingCreated:
		s.onCreated(ctx, event)
	case domain.EventBookingCancelled:
		s.onCancelled(ctx, event)
	default:
		s.logger.Debug("Notifications: ignoring event type %q", event.Type)
	}
}

func (s *Service) onCreated(ctx context.Context, event domain.BookingEvent) {
	if s.config.NotifyCustomer {
		_ = s.deliver(ctx, whatsapp.Message{
			To:     event.Booking.Contact,
			Body:   CustomerConfirmation(event),
			Target: whatsapp.TargetCustomer,
		}, event.Booking.ID)
	}

	if s.config.NotifyOwner && s.hasOwner() {
		_ = s.deliver(ctx, whatsapp.Message{
			To:     s.config.OwnerContact,
			Body:   OwnerAnnouncement(event),
			Target: whatsapp.TargetOwner,
		}, event.Booking.ID)
	}
}

func (s *Service) onCancelled(ctx context.Context, event domain.BookingEvent) {
	if !s.config.NotifyCancellation || !s.hasOwner() {
		return
	}

	_ = s.deliver(ctx, whatsapp.Message{
		To:     s.config.OwnerContact,
		Body:   OwnerCancellation(event),
		Target: whatsapp.TargetOwner,
	}, event.Booking.ID)
}

// NotifyOwner отправляет владельцу произвольное сообщение (дайджест и т.п.)
func (s *Service) NotifyOwner(ctx context.Context, body string) error {
	if !s.hasOwner() {
		return fmt.Errorf("%w: owner contact is not configured", ErrNotificationUnavailable)
	}
	return s.deliver(ctx, whatsapp.Message{
		To:     s.config.OwnerContact,
		Body:   body,
		Target: whatsapp.TargetOwner,
	}, 0)
}

func (s *Service) deliver(ctx context.Context, msg whatsapp.Message, bookingID int64) error {
	if s.config.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.SendTimeout)
		defer cancel()
	}

	receipt, err := s.sender.Send(ctx, msg)
	if err != nil {
		s.metrics.RecordNotification(string(msg.Target), metrics.ResultFailure)
		s.logger.Warn("Notifications: failed to notify %s for booking id=%d: %v", msg.Target, bookingID, err)
		return fmt.Errorf("%w: %s: %v", ErrNotificationUnavailable, msg.Target, err)
	}

	s.metrics.RecordNotification(string(msg.Target), metrics.ResultSuccess)
	s.logger.Debug("Notifications: %s notified for booking id=%d (%s)", msg.Target, bookingID, receipt.ID)
	return nil
}

// hasOwner владелец задан, если номер не короче MinOwnerContactLen
func (s *Service) hasOwner() bool {
	return len(s.config.OwnerContact) >= domain.MinOwnerContactLen
}
