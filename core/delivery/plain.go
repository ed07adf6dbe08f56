// ABOUTME: Plain-text delivery strategy writing through the platform clipboard
// ABOUTME: Final link of every chain; it loses rich formatting but always applies

package delivery

import (
	"context"

	"tabclip-api/core/domain"
	coreerrors "tabclip-api/core/errors"
	"tabclip-api/core/interfaces"
)

// plainStrategy writes the payload's plain-text rendering through the
// platform clipboard's text primitive.
type plainStrategy struct {
	clipboard interfaces.Clipboard
}

func newPlainStrategy(clipboard interfaces.Clipboard) *plainStrategy {
	return &plainStrategy{clipboard: clipboard}
}

func (s *plainStrategy) Name() string { return "plain-write" }

func (s *plainStrategy) Attempt(ctx context.Context, payload *domain.Payload) Result {
	if err := s.clipboard.WriteText(ctx, payload.PlainText); err != nil {
		if coreerrors.IsCapabilityAbsent(err) {
			return unsupported(err)
		}
		return failure(&coreerrors.ClipboardWriteError{Strategy: s.Name(), Err: err})
	}
	return success()
}
