// ABOUTME: RenderContext is the per-tab record a format string is resolved against
// ABOUTME: Created fresh per tab per render pass and discarded after use

package format

import (
	"time"

	"tabclip-api/core/domain"
)

// containerSeparator joins a container label with the text that follows it
// in the fixed container tokens.
const containerSeparator = ": "

// RenderContext holds everything one tab's render pass may reference. No
// instance is cached across render passes.
type RenderContext struct {
	// Tab is the tab snapshot being rendered
	Tab domain.Tab

	// IndentLevel is the tab's depth among the selected ancestors
	IndentLevel int

	// LineFeed is the configured line separator ("\n" or "\r\n")
	LineFeed string

	// Now is the render pass timestamp; UTC and local renderings derive
	// from it
	Now time.Time

	// Author, Description and Keywords are extracted page metadata,
	// present only when extraction succeeded and the format required them
	Author      string
	Description string
	Keywords    string
}
