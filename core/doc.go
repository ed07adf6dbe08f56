// Package core contains the business logic for the TabClip API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Tab, TreeNode, Payload, etc.)
// - format: Placeholder template engine and escaping helpers
// - render: Render orchestration turning tab selections into payloads
// - extract: Page metadata extraction for author/description/keywords tokens
// - delivery: Clipboard delivery strategy chain
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger,
//   clipboard, surfaces, notifier)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "tabclip-api/core/interfaces"
//	    "tabclip-api/core/render"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	renderService := render.NewService(deps, extractor, tabSource)
//
//	// Render a selection
//	payload, err := renderService.Render(ctx, render.Request{
//	    Tabs:   tabs,
//	    Format: "%TITLE%%EOL%%URL%",
//	}, render.Options{LineFeed: "\n"})
package core
