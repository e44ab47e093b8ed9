package service

import (
	"perfsmell/internal/model"
	"perfsmell/internal/util/analyzer"
)

// extract every <img> element in document order
func extractImages(rawHTML string) []model.ImageTag {
	matches := analyzer.ImgTagPattern.FindAllStringSubmatch(rawHTML, -1)
	images := make([]model.ImageTag, 0, len(matches))
	for _, m := range matches {
		attrs := m[1]
		src, _ := analyzer.SrcValue(attrs)
		images = append(images, model.ImageTag{
			Attributes: attrs,
			HasLazy:    analyzer.HasLazyLoading(attrs),
			Src:        src,
			Width:      analyzer.WidthValue(attrs),
			Height:     analyzer.HeightValue(attrs),
		})
	}
	return images
}

// isSuspectedLarge only trusts declared width/height on raster sources; the
// image itself is never downloaded.
func isSuspectedLarge(img model.ImageTag) bool {
	return analyzer.IsRasterSource(img.Src) && analyzer.ExceedsLargeDimension(img.Width, img.Height)
}

func summarizeImages(images []model.ImageTag) model.ImageStats {
	var stats model.ImageStats
	for _, img := range images {
		stats.TotalImages++
		if !img.HasLazy {
			stats.NoLazy++
		}
		if isSuspectedLarge(img) {
			stats.SuspectedLarge++
		}
	}
	return stats
}
