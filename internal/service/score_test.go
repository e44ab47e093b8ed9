package service

import (
	"testing"

	"perfsmell/internal/model"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		scripts  model.ScriptStats
		images   model.ImageStats
		expected int
	}{
		{
			name:     "Clean page",
			expected: 100,
		},
		{
			name:     "Thresholds are exclusive",
			scripts:  model.ScriptStats{TotalScripts: 10, BlockingScripts: 5, InlineBytes: 50_000},
			images:   model.ImageStats{TotalImages: 2, NoLazy: 1},
			expected: 100,
		},
		{
			name:     "Fifteen blocking scripts",
			scripts:  model.ScriptStats{TotalScripts: 15, BlockingScripts: 15},
			expected: 50,
		},
		{
			name:     "Inline weight first tier",
			scripts:  model.ScriptStats{TotalScripts: 1, BlockingScripts: 1, InlineBytes: 60_000},
			expected: 85,
		},
		{
			name:     "Inline weight tiers stack",
			scripts:  model.ScriptStats{TotalScripts: 1, BlockingScripts: 1, InlineBytes: 150_001},
			expected: 65,
		},
		{
			name:     "Mostly non-lazy images",
			images:   model.ImageStats{TotalImages: 3, NoLazy: 2},
			expected: 90,
		},
		{
			name:     "Large images",
			images:   model.ImageStats{TotalImages: 4, NoLazy: 0, SuspectedLarge: 3},
			expected: 85,
		},
		{
			name:     "Clamped at zero",
			scripts:  model.ScriptStats{TotalScripts: 60, BlockingScripts: 60, InlineBytes: 200_000},
			images:   model.ImageStats{TotalImages: 10, NoLazy: 10, SuspectedLarge: 10},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := computeScore(tt.scripts, tt.images)
			if result != tt.expected {
				t.Errorf("computeScore() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestComputeScoreBounds(t *testing.T) {
	for total := 0; total <= 40; total += 3 {
		for blocking := 0; blocking <= total; blocking += 2 {
			for _, inline := range []int{0, 50_001, 150_001} {
				for images := 0; images <= 8; images += 2 {
					for large := 0; large <= images; large++ {
						scripts := model.ScriptStats{TotalScripts: total, BlockingScripts: blocking, InlineBytes: inline}
						imgs := model.ImageStats{TotalImages: images, NoLazy: images, SuspectedLarge: large}
						score := computeScore(scripts, imgs)
						if score < 0 || score > 100 {
							t.Fatalf("computeScore(%+v, %+v) = %d, outside [0, 100]", scripts, imgs, score)
						}
					}
				}
			}
		}
	}
}
