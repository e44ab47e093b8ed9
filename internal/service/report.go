package service

import (
	"fmt"
	"math"

	"perfsmell/internal/model"
)

// inlineKB rounds a byte count to the nearest whole kilobyte.
func inlineKB(bytes int) int {
	return int(math.Round(float64(bytes) / 1024))
}

// build the ordered notes; the first and the image note are always present
func buildNotes(scripts model.ScriptStats, images model.ImageStats) []string {
	notes := make([]string, 0, 5)

	notes = append(notes, fmt.Sprintf("%d <script> tags detected.", scripts.TotalScripts))

	if scripts.BlockingScripts > 0 {
		notes = append(notes, fmt.Sprintf("%d scripts without async/defer (potentially render-blocking).", scripts.BlockingScripts))
	} else {
		notes = append(notes, "Most scripts appear to be async/defer.")
	}

	if scripts.InlineBytes > 0 {
		notes = append(notes, fmt.Sprintf("Inline JS is ~%d KB.", inlineKB(scripts.InlineBytes)))
	}

	if images.TotalImages > 0 {
		notes = append(notes, fmt.Sprintf("%d/%d images missing loading=\"lazy\".", images.NoLazy, images.TotalImages))
	} else {
		notes = append(notes, "No images detected.")
	}

	if images.SuspectedLarge > 0 {
		notes = append(notes, fmt.Sprintf("%d images look large (PNG/JPG with width or height over 1000).", images.SuspectedLarge))
	}

	return notes
}

func buildReport(pageURL string, scripts model.ScriptStats, images model.ImageStats, score int) *model.PerformanceAnalysis {
	return &model.PerformanceAnalysis{
		URL:                   pageURL,
		TotalScripts:          scripts.TotalScripts,
		BlockingScripts:       scripts.BlockingScripts,
		InlineScriptKB:        inlineKB(scripts.InlineBytes),
		TotalImages:           images.TotalImages,
		ImagesMissingLazyLoad: images.NoLazy,
		SuspectedLargeImages:  images.SuspectedLarge,
		PerformanceSmellScore: score,
		Notes:                 buildNotes(scripts, images),
	}
}
