package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const channelPrefix = "whatsapp:"

// TwilioConfig параметры доступа к Twilio
type TwilioConfig struct {
	AccountSID         string
	AuthToken          string
	FromNumber         string // WhatsApp номер отправителя, например +14155238886
	DefaultCountryCode string // добавляется к номерам без '+', например +91
}

// TwilioSender отправляет сообщения через Twilio WhatsApp API
type TwilioSender struct {
	api                messageCreator
	from               string
	defaultCountryCode string
	log                Logger
}

// NewTwilioSender создает отправителя с REST клиентом Twilio
func NewTwilioSender(cfg TwilioConfig, log Logger) (*TwilioSender, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, fmt.Errorf("%w: account sid, auth token and sender number are required", ErrNotConfigured)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return newTwilioSender(client.Api, cfg, log)
}

func newTwilioSender(api messageCreator, cfg TwilioConfig, log Logger) (*TwilioSender, error) {
	from, err := toE164(cfg.FromNumber, cfg.DefaultCountryCode)
	if err != nil {
		return nil, fmt.Errorf("%w: sender number: %v", ErrNotConfigured, err)
	}

	return &TwilioSender{
		api:                api,
		from:               from,
		defaultCountryCode: cfg.DefaultCountryCode,
		log:                log,
	}, nil
}

// Send отправляет сообщение
// Twilio SDK не принимает context, поэтому отмена проверяется только перед запросом
func (s *TwilioSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if strings.TrimSpace(msg.Body) == "" {
		return Receipt{}, ErrEmptyMessage
	}

	to, err := toE164(msg.To, s.defaultCountryCode)
	if err != nil {
		return Receipt{}, err
	}

	if err := ctx.Err(); err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(channelPrefix + to)
	params.SetFrom(channelPrefix + s.from)
	params.SetBody(msg.Body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: to=%s: %v", ErrDeliveryFailed, to, err)
	}

	receipt := Receipt{}
	if resp != nil && resp.Sid != nil {
		receipt.ID = *resp.Sid
	}

	s.log.Info("WhatsApp message sent via Twilio: target=%s, to=%s, sid=%s", msg.Target, to, receipt.ID)
	return receipt, nil
}
