package whatsapp

import "errors"

var (
	// ErrInvalidRecipient возвращается, когда номер получателя пустой или некорректный
	ErrInvalidRecipient = errors.New("whatsapp client: invalid recipient")

	// ErrEmptyMessage возвращается при попытке отправить пустой текст
	ErrEmptyMessage = errors.New("whatsapp client: empty message body")

	// ErrNotConfigured возвращается, когда не заданы учетные данные или номер отправителя
	ErrNotConfigured = errors.New("whatsapp client: not configured")

	// ErrDeliveryFailed возвращается, когда провайдер отклонил сообщение или недоступен
	ErrDeliveryFailed = errors.New("whatsapp client: delivery failed")
)
