package whatsapp

import (
	"context"
	"net/url"
	"strings"
)

const linkBaseURL = "https://wa.me/"

// LinkSender формирует click-to-chat ссылки wa.me вместо отправки через провайдера
// Используется, когда Twilio не настроен: ссылка пишется в лог и возвращается в Receipt
type LinkSender struct {
	defaultCountryCode string
	log                Logger
}

// NewLinkSender создает отправителя ссылок
func NewLinkSender(defaultCountryCode string, log Logger) *LinkSender {
	return &LinkSender{defaultCountryCode: defaultCountryCode, log: log}
}

// Send строит ссылку для сообщения
func (s *LinkSender) Send(_ context.Context, msg Message) (Receipt, error) {
	if strings.TrimSpace(msg.Body) == "" {
		return Receipt{}, ErrEmptyMessage
	}

	to, err := toE164(msg.To, s.defaultCountryCode)
	if err != nil {
		return Receipt{}, err
	}

	link := BuildLink(to, msg.Body)
	s.log.Info("WhatsApp link prepared: target=%s, url=%s", msg.Target, link)

	return Receipt{ID: link, URL: link}, nil
}

// BuildLink возвращает ссылку https://wa.me/<digits>?text=<body>
// Пробелы кодируются как %20: WhatsApp не декодирует '+' в тексте
func BuildLink(number, body string) string {
	text := strings.ReplaceAll(url.QueryEscape(body), "+", "%20")
	return linkBaseURL + onlyDigits(number) + "?text=" + text
}
