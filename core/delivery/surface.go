// ABOUTME: Ephemeral-surface delivery strategy driving a browser copy event
// ABOUTME: Creates a temporary tab or window, intercepts one copy, and always releases the surface

package delivery

import (
	"context"
	"time"

	"tabclip-api/core/domain"
	coreerrors "tabclip-api/core/errors"
	"tabclip-api/core/interfaces"
)

const (
	// copyEventTimeout bounds the wait for the intercepted copy event
	copyEventTimeout = 250 * time.Millisecond

	// releaseTimeout bounds surface removal, which must run even when the
	// delivery context is already gone
	releaseTimeout = 2 * time.Second
)

// surfaceStrategy copies rich content by creating an ephemeral browser
// surface, intercepting a copy event inside it, and letting the browser
// populate the clipboard with both representations. Every problem along the
// way maps to StatusUnsupported so the chain falls through to the plain
// write instead of aborting the delivery.
type surfaceStrategy struct {
	provider interfaces.SurfaceProvider
	logger   interfaces.Logger
	windowID int
}

func newSurfaceStrategy(provider interfaces.SurfaceProvider, logger interfaces.Logger, windowID int) *surfaceStrategy {
	return &surfaceStrategy{provider: provider, logger: logger, windowID: windowID}
}

func (s *surfaceStrategy) Name() string { return "surface-copy" }

func (s *surfaceStrategy) Attempt(ctx context.Context, payload *domain.Payload) Result {
	if s.provider == nil {
		return unsupported(nil)
	}

	surface, err := s.acquire(ctx)
	if err != nil {
		s.logger.Warn("Surface acquisition failed", map[string]interface{}{
			"error": err.Error(),
		})
		return unsupported(&coreerrors.SurfaceAcquisitionError{Err: err})
	}
	defer s.release(surface)

	copyCtx, cancel := context.WithTimeout(ctx, copyEventTimeout)
	defer cancel()

	if err := s.provider.ExecCopy(copyCtx, surface, payload.PlainText, payload.RichText); err != nil {
		s.logger.Warn("Surface copy did not complete", map[string]interface{}{
			"tab_id": surface.TabID,
			"error":  err.Error(),
		})
		return unsupported(err)
	}
	return success()
}

// acquire creates the ephemeral surface: a tab in the requested window, or a
// whole temporary window when tab creation fails.
func (s *surfaceStrategy) acquire(ctx context.Context) (*interfaces.Surface, error) {
	surface, err := s.provider.CreateTab(ctx, s.windowID)
	if err == nil {
		return surface, nil
	}

	s.logger.Debug("Falling back to a temporary window", map[string]interface{}{
		"window_id": s.windowID,
		"error":     err.Error(),
	})
	return s.provider.CreateWindow(ctx)
}

// release removes the surface exactly once, using the window path only when
// a whole window was created. It runs on a fresh context so removal still
// happens after the delivery context expired.
func (s *surfaceStrategy) release(surface *interfaces.Surface) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	var err error
	if surface.CreatedWindow {
		err = s.provider.RemoveWindow(ctx, surface.WindowID)
	} else {
		err = s.provider.RemoveTab(ctx, surface.TabID)
	}
	if err != nil {
		s.logger.Warn("Surface removal failed", map[string]interface{}{
			"tab_id":         surface.TabID,
			"window_id":      surface.WindowID,
			"created_window": surface.CreatedWindow,
			"error":          err.Error(),
		})
	}
}
