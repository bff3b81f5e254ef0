package notification

import (
	"context"
	"fmt"

	"conectcliente/models"
	"conectcliente/services/client"
	"conectcliente/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendClientPushNotification(ctx context.Context, clientID, title, body string, data map[string]string) error
	NotifyBookingRecorded(ctx context.Context, booking models.Booking) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	client client.ClientService
}

func NewDefaultNotificationService(clientSvc client.ClientService) (*DefaultNotificationService, error) {
	if clientSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: client service is nil")
	}
	return &DefaultNotificationService{client: clientSvc}, nil
}

// SendClientPushNotification looks up a client's FCM token and sends a push.
func (s *DefaultNotificationService) SendClientPushNotification(
	ctx context.Context,
	clientID, title, body string,
	data map[string]string,
) error {
	c, err := s.client.GetByID(clientID)
	if err != nil {
		return fmt.Errorf("SendClientPushNotification: could not find client %s: %w", clientID, err)
	}
	token := c.FCMToken
	if token == "" {
		return fmt.Errorf("SendClientPushNotification: client %s has no FCM token", clientID)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendClientPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// NotifyBookingRecorded tells the client their request was received.
func (s *DefaultNotificationService) NotifyBookingRecorded(ctx context.Context, booking models.Booking) error {
	title := "Pedido recebido ✅"
	body := fmt.Sprintf(
		"Seu pedido de %s em %s no dia %s às %s foi registrado. Entraremos em contato para finalizar o agendamento.",
		booking.Service, booking.Location, booking.Date, booking.Time,
	)
	return s.SendClientPushNotification(ctx, booking.ClientID, title, body, map[string]string{
		"type":      "booking_recorded",
		"bookingId": booking.ID,
	})
}
