package notify

import "context"

// Notifier is the best-effort "something happened" side channel to the other
// participant. Implementations must never let a delivery failure propagate
// to the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, recipient int64, title, body string, meta map[string]string) error
}

// Nop discards every notification. Used when no bot token is configured.
type Nop struct{}

func (Nop) Notify(context.Context, int64, string, string, map[string]string) error {
	return nil
}
