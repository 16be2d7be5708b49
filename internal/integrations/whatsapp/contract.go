package whatsapp

import (
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator часть Twilio API, которая отправляет сообщения
// *twilioApi.ApiService удовлетворяет этому интерфейсу
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
