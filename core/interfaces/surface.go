// ABOUTME: Ephemeral surface provider contract for the DOM copy-event fallback
// ABOUTME: A surface is a temporary browser tab or window hosting one copy operation

package interfaces

import "context"

// Surface is a temporary, non-activated browsing surface created solely to
// host a clipboard copy operation. It is the only acquired resource the
// delivery pipeline must release explicitly: exactly once, via the
// window-removal path when CreatedWindow is true, otherwise via the
// tab-removal path.
type Surface struct {
	// TabID is the temporary tab's identifier
	TabID int

	// WindowID is the window hosting the temporary tab
	WindowID int

	// CreatedWindow is true when a whole temporary window was created
	// because tab creation in the requested window failed
	CreatedWindow bool
}

// SurfaceProvider creates and removes ephemeral surfaces and executes the
// intercepted copy command inside them. Implementations drive the browser
// through the extension bridge.
type SurfaceProvider interface {
	// CreateTab creates a blank, non-active tab adjacent to the active tab
	// of the given window. May fail, e.g. when the window no longer exists.
	CreateTab(ctx context.Context, windowID int) (*Surface, error)

	// CreateWindow creates a small blank temporary window as a fallback
	// when tab creation failed.
	CreateWindow(ctx context.Context) (*Surface, error)

	// ExecCopy installs a one-shot copy-event interceptor in the surface
	// supplying both representations, then triggers the copy command. It
	// returns when the interceptor fired or the context expired, whichever
	// comes first; the interceptor is deregistered in both cases.
	ExecCopy(ctx context.Context, surface *Surface, plain, rich string) error

	// RemoveTab removes a tab by id.
	RemoveTab(ctx context.Context, tabID int) error

	// RemoveWindow removes a whole window by id.
	RemoveWindow(ctx context.Context, windowID int) error
}

// TabSource resolves browser-side tab facts the extension did not inline in
// the request. Resolution failures are treated as "no container".
type TabSource interface {
	// ContainerName returns a container's display name by its identifier.
	ContainerName(ctx context.Context, containerID string) (string, error)
}
