// ABOUTME: Desktop notifier implementation using beeep
// ABOUTME: Fetches remote notification icons through the shared HTTP client

package notify

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"

	"tabclip-api/core/interfaces"
)

// maxIconBytes caps how much of a remote icon is downloaded
const maxIconBytes = 1 << 20

// BeeepNotifier implements the Notifier interface using desktop
// notifications. The platform decides the display duration and does not
// report clicks, so Notify always resolves clicked as false.
type BeeepNotifier struct {
	deps interfaces.Dependencies
}

// New creates a desktop notifier.
func New(deps interfaces.Dependencies) *BeeepNotifier {
	return &BeeepNotifier{deps: deps}
}

// Notify shows one desktop notification.
func (n *BeeepNotifier) Notify(ctx context.Context, notification interfaces.Notification) (bool, error) {
	icon := ""
	if notification.IconURL != "" {
		icon = n.fetchIcon(ctx, notification.IconURL)
	}

	if err := beeep.Notify(notification.Title, notification.Message, icon); err != nil {
		return false, err
	}
	return false, nil
}

// fetchIcon downloads the icon to a temp file and returns its path, or an
// empty string when anything goes wrong; notifications still show without
// an icon.
func (n *BeeepNotifier) fetchIcon(ctx context.Context, url string) string {
	resp, err := n.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		n.deps.Logger.Debug("Notification icon fetch failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return ""
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		n.deps.Logger.Debug("Notification icon fetch returned non-200", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode(),
		})
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxIconBytes))
	if err != nil {
		return ""
	}

	path := filepath.Join(os.TempDir(), "tabclip-notification-icon")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ""
	}
	return path
}
