package service

import (
	"perfsmell/internal/model"
	"perfsmell/internal/util/analyzer"
)

// extract every <script> element in document order. Unterminated tags are
// skipped rather than reported.
func extractScripts(rawHTML string) []model.ScriptTag {
	matches := analyzer.ScriptTagPattern.FindAllStringSubmatch(rawHTML, -1)
	scripts := make([]model.ScriptTag, 0, len(matches))
	for _, m := range matches {
		attrs := m[1]
		scripts = append(scripts, model.ScriptTag{
			Attributes: attrs,
			Body:       m[2],
			HasDefer:   analyzer.HasDefer(attrs),
			HasAsync:   analyzer.HasAsync(attrs),
			HasSrc:     analyzer.HasNonEmptySrc(attrs),
		})
	}
	return scripts
}

// count scripts, blocking scripts and the UTF-8 weight of inline bodies
func summarizeScripts(scripts []model.ScriptTag) model.ScriptStats {
	var stats model.ScriptStats
	for _, s := range scripts {
		stats.TotalScripts++
		if s.Blocking() {
			stats.BlockingScripts++
		}
		if !s.HasSrc {
			// len on a Go string is its UTF-8 byte count
			stats.InlineBytes += len(s.Body)
		}
	}
	return stats
}
