package service

import "perfsmell/internal/model"

const (
	baseScore = 100

	scriptCountThreshold = 10
	scriptCountPenalty   = 2

	blockingThreshold = 5
	blockingPenalty   = 4

	inlineBytesThreshold = 50_000
	inlineBytesPenalty   = 15
	inlineBytesHeavy     = 150_000
	inlineBytesHeavyCost = 20

	lazyMissingRatio   = 0.5
	lazyMissingPenalty = 10

	largeImagePenalty = 5
)

// computeScore applies the additive penalties to a base of 100 and floors the
// result at 0.
func computeScore(scripts model.ScriptStats, images model.ImageStats) int {
	score := baseScore

	if scripts.TotalScripts > scriptCountThreshold {
		score -= (scripts.TotalScripts - scriptCountThreshold) * scriptCountPenalty
	}
	if scripts.BlockingScripts > blockingThreshold {
		score -= (scripts.BlockingScripts - blockingThreshold) * blockingPenalty
	}
	if scripts.InlineBytes > inlineBytesThreshold {
		score -= inlineBytesPenalty
	}
	if scripts.InlineBytes > inlineBytesHeavy {
		score -= inlineBytesHeavyCost
	}
	if images.TotalImages > 0 && float64(images.NoLazy)/float64(images.TotalImages) > lazyMissingRatio {
		score -= lazyMissingPenalty
	}
	if images.SuspectedLarge > 0 {
		score -= images.SuspectedLarge * largeImagePenalty
	}

	if score < 0 {
		return 0
	}
	return score
}
