// ABOUTME: Tab domain model represents a browser tab snapshot supplied by the extension
// ABOUTME: Also defines the TreeNode forest used for ancestor/indent computation

package domain

// Tab is a read-only snapshot of a browser tab. The extension owns the tab;
// the service only reads the snapshot, except for ContainerName which is
// derived and attached during a render pass.
type Tab struct {
	// ID is the tab identifier, unique within a browser session
	ID int `json:"id"`

	// WindowID identifies the window the tab belongs to
	WindowID int `json:"windowId"`

	// Title is the tab's document title
	Title string `json:"title"`

	// URL is the tab's current address
	URL string `json:"url"`

	// ContainerID is the contextual identity identifier, if any
	ContainerID string `json:"containerId,omitempty"`

	// ContainerName is the container's display name, resolved during a
	// render pass. Empty means "no container".
	ContainerName string `json:"containerName,omitempty"`

	// Discarded is true when the tab's content has been unloaded from memory
	Discarded bool `json:"discarded"`

	// Active is true for the window's active tab
	Active bool `json:"active"`
}

// TreeNode is one node of the tab tree forest. The forest is transient input
// used only to compute ancestor relationships; it is never persisted.
type TreeNode struct {
	// ID matches a Tab ID
	ID int `json:"id"`

	// Children are the node's ordered child nodes
	Children []TreeNode `json:"children,omitempty"`
}
