package services

import "context"

// Notifier is the outbound notification hook fired after a successful
// registration. Delivery (email or otherwise) lives outside this
// module; the default is a no-op.
type Notifier interface {
	RegistrationSubmitted(ctx context.Context, employeeName string, shiftCount int) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) RegistrationSubmitted(context.Context, string, int) error { return nil }
