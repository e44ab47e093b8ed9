package model

// PageSource is the raw markup of one fetched page.
type PageSource struct {
	URL  string
	HTML string
}

// ScriptTag is one matched <script> element.
type ScriptTag struct {
	Attributes string
	Body       string
	HasDefer   bool
	HasAsync   bool
	HasSrc     bool
}

// Blocking reports whether the script carries neither defer nor async.
// Placement in the document is not considered.
func (s ScriptTag) Blocking() bool {
	return !s.HasDefer && !s.HasAsync
}

// ImageTag is one matched <img> element. Width and Height are nil when the
// attribute is absent or not numeric.
type ImageTag struct {
	Attributes string
	HasLazy    bool
	Src        string
	Width      *int
	Height     *int
}

type ScriptStats struct {
	TotalScripts    int
	BlockingScripts int
	InlineBytes     int
}

type ImageStats struct {
	TotalImages    int
	NoLazy         int
	SuspectedLarge int
}

type PerformanceAnalysis struct {
	URL                   string   `json:"url"`
	TotalScripts          int      `json:"totalScripts"`
	BlockingScripts       int      `json:"blockingScripts"`
	InlineScriptKB        int      `json:"inlineScriptKB"`
	TotalImages           int      `json:"totalImages"`
	ImagesMissingLazyLoad int      `json:"imagesMissingLazyLoad"`
	SuspectedLargeImages  int      `json:"suspectedLargeImages"`
	PerformanceSmellScore int      `json:"performanceSmellScore"`
	Notes                 []string `json:"notes"`
}

// AnalyzeRequest is the body accepted by POST /analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}
