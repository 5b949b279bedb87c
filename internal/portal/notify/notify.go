// Package notify delivers one-time passcodes to customers over email or SMS.
package notify

import "context"

const (
	// KindOtp indicates a login passcode delivery.
	KindOtp = "otp"
)

// Message describes a notification payload.
type Message struct {
	Kind        string
	Destination string
	Subject     string
	Body        string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}
