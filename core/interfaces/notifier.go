// ABOUTME: Notifier contract for reporting delivery outcomes to the user
// ABOUTME: Implementations show a transient, dismissible desktop notification

package interfaces

import (
	"context"
	"time"
)

// Notification describes one transient system notification.
type Notification struct {
	// Title is the notification headline
	Title string

	// Message is the notification body
	Message string

	// IconURL optionally points at an icon image to show; implementations
	// may ignore it when fetching fails
	IconURL string

	// ClickURL optionally makes the notification clickable, opening the URL
	ClickURL string

	// Timeout is how long the notification stays before auto-clearing
	Timeout time.Duration
}

// Notifier displays system notifications. Notify resolves whether the user
// clicked the notification before it cleared, when the platform can tell.
type Notifier interface {
	Notify(ctx context.Context, n Notification) (clicked bool, err error)
}
