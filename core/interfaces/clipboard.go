// ABOUTME: Clipboard primitive contracts consumed by the delivery pipeline
// ABOUTME: Write may legitimately be absent on a platform and signals that via ErrCapabilityAbsent

package interfaces

import "context"

// ClipboardItem is one representation of a multi-representation clipboard
// payload.
type ClipboardItem struct {
	// MIME is the representation's media type, e.g. "text/plain" or
	// "text/html"
	MIME string

	// Data is the representation's content
	Data string
}

// Clipboard defines the platform clipboard primitives. WriteText is assumed
// to exist everywhere; Write (the generic multi-representation write) may be
// absent, in which case implementations return an error satisfying
// errors.IsCapabilityAbsent so the strategy chain can advance instead of
// failing.
type Clipboard interface {
	// WriteText places a plain-text payload on the clipboard.
	WriteText(ctx context.Context, text string) error

	// Write places a multi-representation payload on the clipboard.
	// Returns coreerrors.ErrCapabilityAbsent when the platform has no
	// generic clipboard-write capability.
	Write(ctx context.Context, items []ClipboardItem) error
}
