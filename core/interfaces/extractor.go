// ABOUTME: Content extractor contract for per-tab supplementary data
// ABOUTME: Returns author/description/keywords extracted from a tab's page

package interfaces

import "context"

// PageMetadata holds the supplementary fields a format may reference.
// Absent fields are empty strings.
type PageMetadata struct {
	Author      string `json:"author"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// ContentExtractor fetches author/description/keywords for a tab's URL.
// Failures are reported as *coreerrors.ExtractionError.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (*PageMetadata, error)
}
