// ABOUTME: Rich-text delivery strategy using the generic multi-representation write
// ABOUTME: Unsupported on platforms without a generic clipboard-write capability

package delivery

import (
	"context"

	"tabclip-api/core/domain"
	coreerrors "tabclip-api/core/errors"
	"tabclip-api/core/interfaces"
)

// richStrategy places both the plain and HTML representations on the
// clipboard in one generic write, so paste targets pick whichever they
// understand.
type richStrategy struct {
	clipboard interfaces.Clipboard
}

func newRichStrategy(clipboard interfaces.Clipboard) *richStrategy {
	return &richStrategy{clipboard: clipboard}
}

func (s *richStrategy) Name() string { return "rich-write" }

func (s *richStrategy) Attempt(ctx context.Context, payload *domain.Payload) Result {
	items := []interfaces.ClipboardItem{
		{MIME: "text/plain", Data: payload.PlainText},
		{MIME: "text/html", Data: payload.RichText},
	}

	if err := s.clipboard.Write(ctx, items); err != nil {
		if coreerrors.IsCapabilityAbsent(err) {
			return unsupported(err)
		}
		return failure(&coreerrors.ClipboardWriteError{Strategy: s.Name(), Err: err})
	}
	return success()
}
