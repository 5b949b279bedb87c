package notify

import (
	"context"
	"strings"
)

// Dispatcher routes a message to the email or SMS channel based on the
// destination: anything containing '@' goes to email, the rest to SMS.
type Dispatcher struct {
	email Notifier
	sms   Notifier
}

// NewDispatcher constructs a channel-routing notifier.
func NewDispatcher(email, sms Notifier) *Dispatcher {
	return &Dispatcher{email: email, sms: sms}
}

// Send routes the message to the appropriate channel.
func (d *Dispatcher) Send(ctx context.Context, message Message) error {
	if strings.Contains(message.Destination, "@") {
		return d.email.Send(ctx, message)
	}
	return d.sms.Send(ctx, message)
}
