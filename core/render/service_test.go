package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tabclip-api/core/domain"
	"tabclip-api/core/interfaces"
)

func tab(id int, title, url string) domain.Tab {
	return domain.Tab{ID: id, Title: title, URL: url}
}

func TestRender_EmptyFormatRejected(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	_, err := svc.Render(context.Background(), Request{Tabs: []domain.Tab{tab(1, "A", "https://a")}}, Options{})
	if err == nil {
		t.Error("Render should reject an empty format")
	}
}

func TestRender_SingleTabNoTrailingLineFeed(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "Example", "https://example.com")},
		Format: "%TITLE%%EOL%%URL%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "Example\nhttps://example.com"
	if payload.PlainText != want {
		t.Errorf("PlainText = %q, want %q", payload.PlainText, want)
	}
	if payload.Count != 1 {
		t.Errorf("Count = %d, want 1", payload.Count)
	}
}

func TestRender_MultipleTabsTrailingLineFeed(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs: []domain.Tab{
			tab(1, "A", "https://a"),
			tab(2, "B", "https://b"),
			tab(3, "C", "https://c"),
		},
		Format: "%URL%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "https://a\nhttps://b\nhttps://c\n"
	if payload.PlainText != want {
		t.Errorf("PlainText = %q, want exactly one trailing line feed", payload.PlainText)
	}
}

func TestRender_PreservesCallerOrder(t *testing.T) {
	// Concurrent rendering must not reorder output.
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	tabs := make([]domain.Tab, 40)
	for i := range tabs {
		tabs[i] = tab(i+1, "t", "https://site/"+string(rune('a'+i%26)))
	}

	payload, err := svc.Render(context.Background(), Request{Tabs: tabs, Format: "%URL%"}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(payload.PlainText, "\n"), "\n")
	if len(lines) != len(tabs) {
		t.Fatalf("got %d lines, want %d", len(lines), len(tabs))
	}
	for i, line := range lines {
		if line != tabs[i].URL {
			t.Fatalf("line %d = %q, want %q", i, line, tabs[i].URL)
		}
	}
}

func TestRender_SkipsExtractionWhenNotNeeded(t *testing.T) {
	extractor := &mockExtractor{}
	svc := NewService(testDeps(), extractor, nil)

	_, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "A", "https://a"), tab(2, "B", "https://b")},
		Format: "%TITLE% - %URL%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if extractor.callCount() != 0 {
		t.Errorf("extractor called %d times for a format without metadata tokens", extractor.callCount())
	}
}

func TestRender_DiscardedTabSubstitutesWithoutExtraction(t *testing.T) {
	extractor := &mockExtractor{}
	svc := NewService(testDeps(), extractor, nil)

	discarded := tab(1, "A", "https://a")
	discarded.Discarded = true

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{discarded},
		Format: "%AUTHOR%",
	}, Options{LineFeed: "\n", ReportErrors: true, DiscardedMessage: "(sleeping)"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if payload.PlainText != "(sleeping)" {
		t.Errorf("PlainText = %q, want the discarded placeholder", payload.PlainText)
	}
	if extractor.callCount() != 0 {
		t.Error("extractor should not be called for a discarded tab")
	}
}

func TestRender_DiscardedTabBlankWhenReportingOff(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	discarded := tab(1, "A", "https://a")
	discarded.Discarded = true

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{discarded},
		Format: "%AUTHOR%",
	}, Options{LineFeed: "\n", ReportErrors: false})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if payload.PlainText != "" {
		t.Errorf("PlainText = %q, want blank", payload.PlainText)
	}
}

func TestRender_PrivilegedTabSubstitutesWithoutExtraction(t *testing.T) {
	extractor := &mockExtractor{}
	svc := NewService(testDeps(), extractor, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "Settings", "about:config")},
		Format: "%AUTHOR%",
	}, Options{LineFeed: "\n", ReportErrors: true})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if payload.PlainText == "" {
		t.Error("privileged tab should substitute placeholder text")
	}
	if extractor.callCount() != 0 {
		t.Error("extractor should not be called for a privileged URL")
	}
}

func TestRender_ExtractionFailureSubstitutesMessage(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, url string) (*interfaces.PageMetadata, error) {
			return nil, errors.New("boom")
		},
	}
	svc := NewService(testDeps(), extractor, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "A", "https://a")},
		Format: "%AUTHOR%",
	}, Options{LineFeed: "\n", ReportErrors: true})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(payload.PlainText, "extraction failed") || !strings.Contains(payload.PlainText, "boom") {
		t.Errorf("PlainText = %q, want an inline extraction failure message", payload.PlainText)
	}
}

func TestRender_ExtractedFieldsMerged(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, url string) (*interfaces.PageMetadata, error) {
			return &interfaces.PageMetadata{Author: "Jane", Description: "desc", Keywords: "k1, k2"}, nil
		},
	}
	svc := NewService(testDeps(), extractor, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "A", "https://a")},
		Format: "%AUTHOR%|%DESCRIPTION%|%KEYWORDS%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if payload.PlainText != "Jane|desc|k1, k2" {
		t.Errorf("PlainText = %q", payload.PlainText)
	}
}

func TestRender_UnknownFunctionBecomesTabText(t *testing.T) {
	// Template errors are recovered per tab; other tabs still render.
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "A", "https://a")},
		Format: "%nope(x)(y)%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(payload.PlainText, "nope") {
		t.Errorf("PlainText = %q, want the error message as the tab text", payload.PlainText)
	}
}

func TestRender_RichPayload(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs: []domain.Tab{
			tab(1, "A", "https://a"),
			tab(2, "B", "https://b"),
		},
		Format: `%RT%<a href="%URL%">%TITLE_HTML%</a>`,
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !payload.IsRich() {
		t.Fatal("payload should be rich")
	}
	wantRich := `<a href="https://a">A</a><br /><a href="https://b">B</a>`
	if payload.RichText != wantRich {
		t.Errorf("RichText = %q, want %q", payload.RichText, wantRich)
	}
	// Plain text derives from the fragment with tags stripped.
	if payload.PlainText != "A\nB\n" {
		t.Errorf("PlainText = %q, want %q", payload.PlainText, "A\nB\n")
	}
}

func TestRender_IndentFromTree(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs: []domain.Tab{
			tab(1, "A", "https://a"),
			tab(2, "B", "https://b"),
			tab(3, "C", "https://c"),
		},
		Tree: []domain.TreeNode{
			{ID: 1, Children: []domain.TreeNode{
				{ID: 2, Children: []domain.TreeNode{{ID: 3}}},
			}},
		},
		SelectedIDs: []int{1, 2, 3},
		Format:      "%INDENT(>)%%TITLE%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "A\n>B\n>>C\n"
	if payload.PlainText != want {
		t.Errorf("PlainText = %q, want %q", payload.PlainText, want)
	}
}

func TestRender_NoTreeMeansNoIndent(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{tab(1, "A", "https://a")},
		Format: "%INDENT(>)%%TITLE%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if payload.PlainText != "A" {
		t.Errorf("PlainText = %q, want no indentation without a tree", payload.PlainText)
	}
}

func TestRender_ResolvesContainerNames(t *testing.T) {
	source := &mockTabSource{
		containerNameFunc: func(ctx context.Context, id string) (string, error) {
			if id == "work" {
				return "Work", nil
			}
			return "", errors.New("no such container")
		},
	}
	svc := NewService(testDeps(), &mockExtractor{}, source)

	withContainer := tab(1, "A", "https://a")
	withContainer.ContainerID = "work"
	unknownContainer := tab(2, "B", "https://b")
	unknownContainer.ContainerID = "gone"

	payload, err := svc.Render(context.Background(), Request{
		Tabs:   []domain.Tab{withContainer, unknownContainer},
		Format: "%CONTAINER%%TITLE%",
	}, Options{LineFeed: "\n"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "Work: A\nB\n"
	if payload.PlainText != want {
		t.Errorf("PlainText = %q, want %q (lookup failure means no container)", payload.PlainText, want)
	}
}

func TestRender_NoTabs(t *testing.T) {
	svc := NewService(testDeps(), &mockExtractor{}, nil)

	payload, err := svc.Render(context.Background(), Request{Format: "%URL%"}, Options{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if payload.PlainText != "" || payload.Count != 0 {
		t.Errorf("empty request should yield an empty payload, got %+v", payload)
	}
}
