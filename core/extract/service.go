// ABOUTME: Content extraction service fetching author/description/keywords for tab URLs
// ABOUTME: Uses colly to scrape head metadata with a readability fallback, cached per URL

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/gocolly/colly"

	coreerrors "tabclip-api/core/errors"
	"tabclip-api/core/interfaces"
)

const (
	collyUserAgent = "Mozilla/5.0 (compatible; TabClip/1.0)"

	requestTimeout = 10 * time.Second
	maxBodySize    = 5 * 1024 * 1024
	cacheTTL       = 24 * time.Hour
)

// Service extracts page metadata for tab URLs. It implements
// interfaces.ContentExtractor.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new extraction service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Extract returns author/description/keywords for the URL, consulting the
// cache first. Privileged URLs and fetch failures yield an ExtractionError.
func (s *Service) Extract(ctx context.Context, targetURL string) (*interfaces.PageMetadata, error) {
	if IsPrivilegedURL(targetURL) {
		return nil, &coreerrors.ExtractionError{URL: targetURL, Err: errScriptingForbidden}
	}

	cacheKey := "page-meta:" + targetURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var meta interfaces.PageMetadata
			if err := json.Unmarshal(data, &meta); err == nil {
				return &meta, nil
			}
		}
	}

	meta, err := s.extractFromURL(targetURL)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(meta); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return meta, nil
}

// extractFromURL fetches the page once and parses its head; when the meta
// tags are incomplete, the captured body runs through readability for the
// byline and excerpt.
func (s *Service) extractFromURL(targetURL string) (*interfaces.PageMetadata, error) {
	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(requestTimeout)

	meta := &interfaces.PageMetadata{}
	var body []byte
	var visitErr error

	c.OnHTML("head", func(e *colly.HTMLElement) {
		parseHead(e.DOM, meta)
	})

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
		s.deps.Logger.Debug("Page fetch failed during extraction", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
	})

	if err := c.Visit(targetURL); err != nil {
		return nil, &coreerrors.ExtractionError{URL: targetURL, Err: err}
	}
	if visitErr != nil {
		return nil, &coreerrors.ExtractionError{URL: targetURL, Err: visitErr}
	}

	if !complete(meta) && len(body) > 0 {
		s.fillFromReadability(targetURL, body, meta)
	}

	return meta, nil
}

// fillFromReadability supplements missing author/description fields from a
// readability parse of the page body. Failures only leave the fields blank.
func (s *Service) fillFromReadability(targetURL string, body []byte, meta *interfaces.PageMetadata) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		s.deps.Logger.Debug("Readability fallback failed", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return
	}

	if meta.Author == "" {
		meta.Author = article.Byline
	}
	if meta.Description == "" {
		meta.Description = article.Excerpt
	}
}
