package mail

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ConsoleSender logs emails instead of sending them. Used in DEV where no
// SES credentials exist.
type ConsoleSender struct{}

var _ Sender = ConsoleSender{}

func NewConsoleSender() ConsoleSender {
	return ConsoleSender{}
}

func (ConsoleSender) Send(_ context.Context, msg Message) error {
	log.Info().
		Str("from", msg.From).
		Strs("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Msg("console mail (not sent)")
	log.Debug().Msg(msg.TextBody)
	return nil
}
