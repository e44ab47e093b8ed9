package service

import (
	"strings"
	"testing"

	"perfsmell/internal/model"
)

func TestExtractScripts(t *testing.T) {
	tests := []struct {
		name     string
		rawHTML  string
		expected []model.ScriptTag
	}{
		{
			name:     "No scripts",
			rawHTML:  "<html><body><p>hello</p></body></html>",
			expected: []model.ScriptTag{},
		},
		{
			name:    "External blocking script",
			rawHTML: `<script src="/app.js"></script>`,
			expected: []model.ScriptTag{
				{Attributes: ` src="/app.js"`, HasSrc: true},
			},
		},
		{
			name:    "Deferred and async scripts in any attribute order",
			rawHTML: `<script defer src='/a.js'></script><SCRIPT type="module" ASYNC src="/b.js"></SCRIPT>`,
			expected: []model.ScriptTag{
				{Attributes: ` defer src='/a.js'`, HasDefer: true, HasSrc: true},
				{Attributes: ` type="module" ASYNC src="/b.js"`, HasAsync: true, HasSrc: true},
			},
		},
		{
			name:    "Inline script keeps its body",
			rawHTML: "<script>\nconsole.log(1);\n</script>",
			expected: []model.ScriptTag{
				{Body: "\nconsole.log(1);\n"},
			},
		},
		{
			name:    "Empty src is inline",
			rawHTML: `<script src="">var x;</script>`,
			expected: []model.ScriptTag{
				{Attributes: ` src=""`, Body: "var x;"},
			},
		},
		{
			name:    "data-src does not make a script external",
			rawHTML: `<script data-src="/lazy.js">var y;</script>`,
			expected: []model.ScriptTag{
				{Attributes: ` data-src="/lazy.js"`, Body: "var y;"},
			},
		},
		{
			name:     "Unterminated script is not matched",
			rawHTML:  `<html><script src="/broken.js">`,
			expected: []model.ScriptTag{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractScripts(tt.rawHTML)
			if len(result) != len(tt.expected) {
				t.Fatalf("extractScripts() returned %d scripts, want %d", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("extractScripts()[%d] = %+v, want %+v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSummarizeScripts(t *testing.T) {
	tests := []struct {
		name     string
		rawHTML  string
		expected model.ScriptStats
	}{
		{
			name:     "Empty page",
			rawHTML:  "",
			expected: model.ScriptStats{},
		},
		{
			name:     "Inline scripts are blocking unless marked",
			rawHTML:  `<script>abc</script><script async>de</script>`,
			expected: model.ScriptStats{TotalScripts: 2, BlockingScripts: 1, InlineBytes: 5},
		},
		{
			name:     "External script body is not inline weight",
			rawHTML:  `<script src="/x.js">ignored</script>`,
			expected: model.ScriptStats{TotalScripts: 1, BlockingScripts: 1, InlineBytes: 0},
		},
		{
			name:     "Multi-byte content counts UTF-8 bytes",
			rawHTML:  `<script defer>var s="é€";</script>`,
			expected: model.ScriptStats{TotalScripts: 1, BlockingScripts: 0, InlineBytes: 14},
		},
		{
			name:     "Inline weight sums across scripts",
			rawHTML:  "<script>" + strings.Repeat("a", 100) + "</script><script>" + strings.Repeat("b", 50) + "</script>",
			expected: model.ScriptStats{TotalScripts: 2, BlockingScripts: 2, InlineBytes: 150},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := summarizeScripts(extractScripts(tt.rawHTML))
			if result != tt.expected {
				t.Errorf("summarizeScripts() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}
