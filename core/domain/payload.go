// ABOUTME: Rendered output models for a copy pass
// ABOUTME: Defines per-tab render results, the joined payload, and the delivery outcome

package domain

// RenderedItem is the output of one tab's render pass.
type RenderedItem struct {
	// PlainText is always present
	PlainText string

	// RichText is an independently valid HTML fragment, or the empty
	// string when the format did not request rich output
	RichText string
}

// Payload is the joined output of a whole render pass, ready for clipboard
// delivery.
type Payload struct {
	// PlainText is the joined plain-text payload
	PlainText string

	// RichText is the joined HTML payload, empty when no item requested
	// rich output
	RichText string

	// Count is the number of tabs rendered into the payload
	Count int
}

// IsRich reports whether the payload carries a rich-text representation.
func (p *Payload) IsRich() bool {
	return p.RichText != ""
}

// DeliveryOutcome summarizes a clipboard delivery attempt for notification
// and API response purposes.
type DeliveryOutcome struct {
	// Success is true when a strategy committed the payload
	Success bool `json:"success"`

	// Count is the number of tabs in the payload
	Count int `json:"count"`

	// Text is the plain-text payload that was (or would have been) copied
	Text string `json:"text"`

	// Error carries the terminal failure description, empty on success
	Error string `json:"error,omitempty"`
}

// FormatPreset is a named, user-configured format string.
type FormatPreset struct {
	// Name is the preset's display name
	Name string `json:"name" toml:"name"`

	// Format is the placeholder template string
	Format string `json:"format" toml:"format"`
}
