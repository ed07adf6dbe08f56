// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds the ambient external dependencies required by the core
// business logic. Collaborators specific to one service (extractor, surface
// provider, notifier) are passed to that service directly.
type Dependencies struct {
	// Cache provides caching functionality
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
