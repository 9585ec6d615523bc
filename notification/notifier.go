package notification

import (
	"context"
	"fmt"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Email is a templated message keyed by one of the EVENT_* names.
type Email struct {
	Event       string
	To          string
	Params      map[string]any
	Attachments []Attachment
}

// Notifier delivers emails and live in-app payloads. Calls are synchronous
// and a failed delivery is returned to the caller as is.
type Notifier interface {
	SendEmail(ctx context.Context, email Email) error
	PushLive(ctx context.Context, userID uint, payload any) error
}

// Channel is the Redis pub/sub channel carrying live payloads for a user.
func Channel(userID uint) string {
	return fmt.Sprintf("notifications:%d", userID)
}
