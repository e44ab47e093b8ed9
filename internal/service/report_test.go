package service

import (
	"reflect"
	"testing"

	"perfsmell/internal/model"
)

func TestBuildNotes(t *testing.T) {
	tests := []struct {
		name     string
		scripts  model.ScriptStats
		images   model.ImageStats
		expected []string
	}{
		{
			name: "Empty page",
			expected: []string{
				"0 <script> tags detected.",
				"Most scripts appear to be async/defer.",
				"No images detected.",
			},
		},
		{
			name:    "Every note",
			scripts: model.ScriptStats{TotalScripts: 4, BlockingScripts: 2, InlineBytes: 60_000},
			images:  model.ImageStats{TotalImages: 5, NoLazy: 3, SuspectedLarge: 2},
			expected: []string{
				"4 <script> tags detected.",
				"2 scripts without async/defer (potentially render-blocking).",
				"Inline JS is ~59 KB.",
				`3/5 images missing loading="lazy".`,
				"2 images look large (PNG/JPG with width or height over 1000).",
			},
		},
		{
			name:    "Small inline script rounds down to zero KB",
			scripts: model.ScriptStats{TotalScripts: 1, BlockingScripts: 0, InlineBytes: 100},
			images:  model.ImageStats{TotalImages: 1},
			expected: []string{
				"1 <script> tags detected.",
				"Most scripts appear to be async/defer.",
				"Inline JS is ~0 KB.",
				`0/1 images missing loading="lazy".`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := buildNotes(tt.scripts, tt.images)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("buildNotes() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestInlineKB(t *testing.T) {
	tests := []struct {
		bytes    int
		expected int
	}{
		{0, 0},
		{511, 0},
		{512, 1},
		{1024, 1},
		{60_000, 59},
		{150_000, 146},
	}

	for _, tt := range tests {
		if got := inlineKB(tt.bytes); got != tt.expected {
			t.Errorf("inlineKB(%d) = %d, want %d", tt.bytes, got, tt.expected)
		}
	}
}
