// Package sms wraps the Twilio REST client behind the small dispatch surface
// the auth and notification flows need.
package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/kormo-app/kormo/internal/pkg/models"
)

// TwilioClient dispatches SMS messages through the Twilio gateway
type TwilioClient struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioClient creates a new Twilio SMS client
func NewTwilioClient(config models.SMSConfig) *TwilioClient {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AccountSID,
		Password: config.AuthToken,
	})

	return &TwilioClient{
		client: client,
		from:   config.FromNumber,
	}
}

// SendSMS delivers a message to the given number and returns the gateway
// message id. The Twilio client does not take a context; cancellation relies
// on the transport's default timeout.
func (t *TwilioClient) SendSMS(_ context.Context, to, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send SMS: %w", err)
	}

	messageID := ""
	if resp.Sid != nil {
		messageID = *resp.Sid
	}
	return messageID, nil
}
