// ABOUTME: Render orchestrator turning selected tabs plus a format into a clipboard payload
// ABOUTME: Fetches per-tab metadata only when the format needs it and joins per-tab output

package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tabclip-api/core/domain"
	"tabclip-api/core/extract"
	"tabclip-api/core/format"
	"tabclip-api/core/interfaces"
	htmlutil "tabclip-api/pkg/utils/html"
)

const (
	// maxConcurrentRenders bounds the per-tab fan-out
	maxConcurrentRenders = 10

	// richJoiner separates per-tab rich fragments in the joined payload
	richJoiner = "<br />"

	defaultDiscardedMessage  = "(tab content is unloaded)"
	defaultPrivilegedMessage = "(content not accessible)"
)

// Request is one render pass: the tabs to render in caller order, the tab
// tree for indent computation, and the chosen format.
type Request struct {
	Tabs            []domain.Tab
	Tree            []domain.TreeNode
	SelectedIDs     []int
	DescendantsOnly bool
	Format          string
}

// Options is the configuration slice a render pass consumes, threaded in
// explicitly by the caller.
type Options struct {
	// LineFeed is the configured separator, "\n" or "\r\n"
	LineFeed string

	// ReportErrors substitutes extraction problems as inline placeholder
	// text; when false the metadata fields stay blank instead
	ReportErrors bool

	// DiscardedMessage and PrivilegedMessage override the default inline
	// substitutions when ReportErrors is set
	DiscardedMessage  string
	PrivilegedMessage string
}

func (o *Options) discardedMessage() string {
	if o.DiscardedMessage != "" {
		return o.DiscardedMessage
	}
	return defaultDiscardedMessage
}

func (o *Options) privilegedMessage() string {
	if o.PrivilegedMessage != "" {
		return o.PrivilegedMessage
	}
	return defaultPrivilegedMessage
}

// Service renders tabs into payloads. Tabs render from independent
// snapshots, so the per-tab work runs concurrently while the joined output
// preserves caller order.
type Service struct {
	deps      interfaces.Dependencies
	extractor interfaces.ContentExtractor
	tabs      interfaces.TabSource
	engine    *format.Engine
}

// NewService creates a render service. tabs may be nil when no browser
// bridge is connected; container names then stay unresolved.
func NewService(deps interfaces.Dependencies, extractor interfaces.ContentExtractor, tabs interfaces.TabSource) *Service {
	return &Service{
		deps:      deps,
		extractor: extractor,
		tabs:      tabs,
		engine:    format.NewEngine(),
	}
}

// Render performs one render pass and returns the joined payload.
func (s *Service) Render(ctx context.Context, req Request, opts Options) (*domain.Payload, error) {
	if req.Format == "" {
		return nil, errors.New("format cannot be empty")
	}
	if opts.LineFeed == "" {
		opts.LineFeed = "\n"
	}
	if len(req.Tabs) == 0 {
		return &domain.Payload{}, nil
	}

	needMeta := format.RequiresPageMetadata(req.Format)

	// Indent levels are computed once per pass, and only when the format
	// cares and a tree was supplied; otherwise every tab stays at level 0.
	var levels map[int]int
	if format.RequiresIndent(req.Format) && len(req.Tree) > 0 {
		levels = format.IndentLevels(req.Tree, req.SelectedIDs, req.DescendantsOnly)
	}

	s.resolveContainers(ctx, req.Tabs)

	now := time.Now()
	items := make([]domain.RenderedItem, len(req.Tabs))
	sem := make(chan struct{}, maxConcurrentRenders)
	var wg sync.WaitGroup

	for i, tab := range req.Tabs {
		wg.Add(1)
		go func(idx int, tab domain.Tab) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items[idx] = s.renderTab(ctx, tab, levels[tab.ID], needMeta, now, req.Format, opts)
		}(i, tab)
	}
	wg.Wait()

	return joinItems(items, opts.LineFeed), nil
}

// renderTab renders a single tab. Template and extraction errors are
// recovered here: the tab's text becomes the error message rather than
// failing the whole batch.
func (s *Service) renderTab(ctx context.Context, tab domain.Tab, level int, needMeta bool, now time.Time, formatStr string, opts Options) domain.RenderedItem {
	rc := &format.RenderContext{
		Tab:         tab,
		IndentLevel: level,
		LineFeed:    opts.LineFeed,
		Now:         now,
	}

	if needMeta {
		s.fillMetadata(ctx, tab, rc, opts)
	}

	out, rich, err := s.engine.Render(formatStr, rc)
	if err != nil {
		s.deps.Logger.Warn("Tab render failed", map[string]interface{}{
			"tab_id": tab.ID,
			"error":  err.Error(),
		})
		return domain.RenderedItem{PlainText: err.Error()}
	}

	if rich {
		return domain.RenderedItem{
			PlainText: htmlutil.ToPlainText(out, opts.LineFeed),
			RichText:  out,
		}
	}
	return domain.RenderedItem{PlainText: out}
}

// fillMetadata populates the context's author/description/keywords fields,
// substituting the configured messages instead of attempting extraction for
// discarded or non-injectable tabs.
func (s *Service) fillMetadata(ctx context.Context, tab domain.Tab, rc *format.RenderContext, opts Options) {
	substitute := func(msg string) {
		if !opts.ReportErrors {
			return
		}
		rc.Author = msg
		rc.Description = msg
		rc.Keywords = msg
	}

	switch {
	case tab.Discarded:
		substitute(opts.discardedMessage())

	case extract.IsPrivilegedURL(tab.URL):
		substitute(opts.privilegedMessage())

	default:
		meta, err := s.extractor.Extract(ctx, tab.URL)
		if err != nil {
			s.deps.Logger.Debug("Content extraction failed", map[string]interface{}{
				"tab_id": tab.ID,
				"url":    tab.URL,
				"error":  err.Error(),
			})
			substitute(fmt.Sprintf("(extraction failed: %v)", err))
			return
		}
		rc.Author = meta.Author
		rc.Description = meta.Description
		rc.Keywords = meta.Keywords
	}
}

// resolveContainers attaches container display names to tabs that arrived
// with only a container id. Resolution failure means "no container".
func (s *Service) resolveContainers(ctx context.Context, tabs []domain.Tab) {
	if s.tabs == nil {
		return
	}

	names := make(map[string]string)
	for i := range tabs {
		if tabs[i].ContainerID == "" || tabs[i].ContainerName != "" {
			continue
		}

		name, ok := names[tabs[i].ContainerID]
		if !ok {
			resolved, err := s.tabs.ContainerName(ctx, tabs[i].ContainerID)
			if err != nil {
				resolved = ""
			}
			names[tabs[i].ContainerID] = resolved
			name = resolved
		}
		tabs[i].ContainerName = name
	}
}

// joinItems assembles the final payload. Plain text joins with the line
// feed, with one trailing line feed when more than one tab was rendered;
// rich fragments join with a line-break element.
func joinItems(items []domain.RenderedItem, lineFeed string) *domain.Payload {
	payload := &domain.Payload{Count: len(items)}

	plains := make([]string, len(items))
	richs := make([]string, len(items))
	anyRich := false
	for i, item := range items {
		plains[i] = item.PlainText
		richs[i] = item.RichText
		if item.RichText != "" {
			anyRich = true
		}
	}

	payload.PlainText = strings.Join(plains, lineFeed)
	if len(items) > 1 {
		payload.PlainText += lineFeed
	}
	if anyRich {
		payload.RichText = strings.Join(richs, richJoiner)
	}

	return payload
}
