// Package sesmail implements mail.Sender on AWS SES.
package sesmail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/xhil-io/autolens-web/mail"
)

// Provider implements mail.Sender using AWS SES.
type Provider struct {
	client      *ses.Client
	fromAddress string
}

var _ mail.Sender = (*Provider)(nil)

// NewProvider creates a new SES email provider. fromAddress is used when a
// message carries no explicit From.
func NewProvider(client *ses.Client, fromAddress string) *Provider {
	return &Provider{
		client:      client,
		fromAddress: fromAddress,
	}
}

// Send sends a single email via SES.
func (p *Provider) Send(ctx context.Context, msg mail.Message) error {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}

	body := &types.Body{}
	if msg.TextBody != "" {
		body.Text = &types.Content{
			Data:    aws.String(msg.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{
			Data:    aws.String(msg.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: msg.To,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: body,
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	if _, err := p.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send to %v: %w", msg.To, err)
	}
	return nil
}
