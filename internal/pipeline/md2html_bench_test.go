//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkEngineConvert benchmarks markdown to HTML conversion with the
// wiki link policy installed.
func BenchmarkEngineConvert(b *testing.B) {
	engine := NewEngine(WithLinkResolver(WikiLinkResolver{AutoIndex: true}))
	ctx := context.Background()

	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "# Hello\n\n[Home](index)"},
		{"links", wikiLinksMarkdown(100)},
		{"code_blocks", codeBlocksMarkdown(10)},
		{"mixed_small", wikiPageMarkdown(10)},
		{"mixed_large", wikiPageMarkdown(200)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := engine.Convert(ctx, input.content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEngineConvertBySize benchmarks conversion scaling with page size.
func BenchmarkEngineConvertBySize(b *testing.B) {
	engine := NewEngine(WithLinkResolver(WikiLinkResolver{}), WithExtensions("extra", "toc"))
	ctx := context.Background()

	for _, size := range []int{1, 10, 100, 500} {
		content := wikiPageMarkdown(size)
		b.Run(fmt.Sprintf("sections_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := engine.Convert(ctx, content); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkStripDirectives benchmarks directive scanning on long pages.
func BenchmarkStripDirectives(b *testing.B) {
	page := "%title Bench\n%date 2024-01-01\n" + wikiPageMarkdown(200)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := StripDirectives(strings.NewReader(page)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRenderTemplate benchmarks placeholder substitution.
func BenchmarkRenderTemplate(b *testing.B) {
	tpl := strings.Repeat("<p>%title% %date% %root_path%</p>\n", 50) + "%content%"
	p := NewPlaceholders("../", "Bench", "2024-01-01")
	p[PlaceholderContent] = wikiPageMarkdown(50)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = RenderTemplate(tpl, p)
	}
}

// Helper functions for generating benchmark input

func wikiLinksMarkdown(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		switch i % 4 {
		case 0:
			fmt.Fprintf(&sb, "- [Page %d](page%d)\n", i, i)
		case 1:
			fmt.Fprintf(&sb, "- [Dir %d](dir%d/)\n", i, i)
		case 2:
			fmt.Fprintf(&sb, "- [Done %d](done%d.html)\n", i, i)
		default:
			fmt.Fprintf(&sb, "- [Site %d](https://example.com/%d)\n", i, i)
		}
	}
	return sb.String()
}

func codeBlocksMarkdown(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("## Snippet\n\n```python\ndef f(x):\n    return x * 2\n```\n\n")
	}
	return sb.String()
}

func wikiPageMarkdown(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Diary\n\nToday with **bold** and *italic* text.\n\n")

	for i := 0; i < sections; i++ {
		fmt.Fprintf(&sb, "## Entry %d\n\n", i+1)
		sb.WriteString("See [the index](index) and [projects](projects/).\n\n")
		sb.WriteString("- [ ] todo\n- [X] done\n\n")

		if i%3 == 0 {
			sb.WriteString("```go\nfunc main() {}\n```\n\n")
		}
		if i%5 == 0 {
			sb.WriteString("| A | B |\n|---|---|\n| 1 | 2 |\n\n")
		}
	}
	return sb.String()
}
