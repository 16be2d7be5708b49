package notifications

import "errors"

// ErrNotificationUnavailable возвращается, когда канал доставки недоступен или отклонил сообщение
// Бронирование при этом остается в силе
var ErrNotificationUnavailable = errors.New("notifications: delivery channel unavailable")
