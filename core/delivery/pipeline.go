// ABOUTME: Delivery pipeline running the strategy chain and reporting the outcome
// ABOUTME: Stops at the first strategy that is not unsupported and notifies exactly once

package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tabclip-api/core/domain"
	"tabclip-api/core/interfaces"
)

const notificationTitle = "TabClip"

// Options configures one delivery.
type Options struct {
	// WindowID is the browser window the request originated from, used when
	// an ephemeral surface tab must be created
	WindowID int

	// Notify enables the desktop notification reporting the outcome
	Notify bool

	// NotifyTimeout is how long the outcome notification stays visible
	NotifyTimeout time.Duration

	// NotifyIcon is an optional icon image URL for the outcome notification
	NotifyIcon string
}

// Pipeline delivers rendered payloads to the clipboard. Rich payloads walk a
// degrading strategy chain; plain payloads go straight to the text write.
type Pipeline struct {
	deps      interfaces.Dependencies
	clipboard interfaces.Clipboard
	surfaces  interfaces.SurfaceProvider
	notifier  interfaces.Notifier
}

// NewPipeline creates a delivery pipeline. surfaces may be nil when no
// browser bridge is connected; the surface strategy then reports itself
// unsupported. notifier may be nil to disable notifications entirely.
func NewPipeline(deps interfaces.Dependencies, clipboard interfaces.Clipboard, surfaces interfaces.SurfaceProvider, notifier interfaces.Notifier) *Pipeline {
	return &Pipeline{
		deps:      deps,
		clipboard: clipboard,
		surfaces:  surfaces,
		notifier:  notifier,
	}
}

// Deliver runs the strategy chain for payload and returns the outcome. The
// chain stops at the first strategy reporting success or failure; strategies
// reporting unsupported are skipped. Exactly one outcome notification is
// shown per call when enabled.
func (p *Pipeline) Deliver(ctx context.Context, payload *domain.Payload, opts Options) *domain.DeliveryOutcome {
	outcome := p.run(ctx, payload, opts)
	p.notify(ctx, outcome, opts)
	return outcome
}

func (p *Pipeline) run(ctx context.Context, payload *domain.Payload, opts Options) *domain.DeliveryOutcome {
	var lastErr error

	for _, strategy := range p.chain(payload, opts) {
		result := strategy.Attempt(ctx, payload)

		switch result.Status {
		case StatusSuccess:
			p.deps.Logger.Info("Payload delivered", map[string]interface{}{
				"strategy": strategy.Name(),
				"count":    payload.Count,
				"rich":     payload.IsRich(),
			})
			return &domain.DeliveryOutcome{
				Success: true,
				Count:   payload.Count,
				Text:    payload.PlainText,
			}

		case StatusFailure:
			p.deps.Logger.Error("Payload delivery failed", map[string]interface{}{
				"strategy": strategy.Name(),
				"error":    result.Err.Error(),
			})
			return &domain.DeliveryOutcome{
				Success: false,
				Count:   payload.Count,
				Text:    payload.PlainText,
				Error:   result.Err.Error(),
			}

		default:
			if result.Err != nil {
				lastErr = result.Err
				p.deps.Logger.Debug("Strategy unsupported, falling through", map[string]interface{}{
					"strategy": strategy.Name(),
					"reason":   result.Err.Error(),
				})
			}
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no delivery strategy available")
	}
	return &domain.DeliveryOutcome{
		Success: false,
		Count:   payload.Count,
		Text:    payload.PlainText,
		Error:   lastErr.Error(),
	}
}

// chain picks the strategy order for payload. Plain payloads never touch the
// rich paths; rich payloads degrade from the generic write through the
// surface copy down to a formatting-losing plain write.
func (p *Pipeline) chain(payload *domain.Payload, opts Options) []Strategy {
	plain := newPlainStrategy(p.clipboard)
	if !payload.IsRich() {
		return []Strategy{plain}
	}
	return []Strategy{
		newRichStrategy(p.clipboard),
		newSurfaceStrategy(p.surfaces, p.deps.Logger, opts.WindowID),
		plain,
	}
}

func (p *Pipeline) notify(ctx context.Context, outcome *domain.DeliveryOutcome, opts Options) {
	if !opts.Notify || p.notifier == nil {
		p.deps.Logger.Debug("Outcome notification skipped", map[string]interface{}{
			"success": outcome.Success,
		})
		return
	}

	n := interfaces.Notification{
		Title:   notificationTitle,
		IconURL: opts.NotifyIcon,
		Timeout: opts.NotifyTimeout,
	}
	if outcome.Success {
		n.Message = fmt.Sprintf("Copied %d tab(s) to the clipboard", outcome.Count)
	} else {
		n.Message = fmt.Sprintf("Copy failed: %s", outcome.Error)
	}

	if _, err := p.notifier.Notify(ctx, n); err != nil {
		p.deps.Logger.Warn("Outcome notification failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
