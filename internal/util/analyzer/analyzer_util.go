package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	ScriptTagPattern = regexp.MustCompile(`(?is)<script\b([^>]*)>(.*?)</script\s*>`)
	ImgTagPattern    = regexp.MustCompile(`(?is)<img\b([^>]*)/?>`)

	deferToken = regexp.MustCompile(`(?i)\bdefer\b`)
	asyncToken = regexp.MustCompile(`(?i)\basync\b`)
	lazyAttr   = regexp.MustCompile(`(?i)\bloading\s*=\s*(?:"lazy"|'lazy')`)

	// src must be its own attribute, not the tail of data-src and friends.
	srcAttr    = regexp.MustCompile(`(?i)(?:^|\s)src\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	widthAttr  = regexp.MustCompile(`(?i)(?:^|\s)width\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	heightAttr = regexp.MustCompile(`(?i)(?:^|\s)height\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)

	leadingInt = regexp.MustCompile(`^\s*(\d+)`)
)

// Raster extensions that count towards the large image heuristic.
var RasterExtensions = []string{".png", ".jpg", ".jpeg"}

const LargeImageDimension = 1000

// HasDefer reports whether the attribute text carries a defer token.
func HasDefer(attrs string) bool {
	return deferToken.MatchString(attrs)
}

// HasAsync reports whether the attribute text carries an async token.
func HasAsync(attrs string) bool {
	return asyncToken.MatchString(attrs)
}

// HasLazyLoading reports whether loading="lazy" is present, with either quote style.
func HasLazyLoading(attrs string) bool {
	return lazyAttr.MatchString(attrs)
}

// SrcValue returns the quoted src value and whether a src attribute was found.
func SrcValue(attrs string) (string, bool) {
	return quotedValue(srcAttr, attrs)
}

// HasNonEmptySrc is the external script test: a src with something inside the quotes.
func HasNonEmptySrc(attrs string) bool {
	v, ok := SrcValue(attrs)
	return ok && v != ""
}

// WidthValue parses the width attribute. Nil means absent or not numeric.
func WidthValue(attrs string) *int {
	v, ok := quotedValue(widthAttr, attrs)
	if !ok {
		return nil
	}
	return ParseDimension(v)
}

// HeightValue parses the height attribute. Nil means absent or not numeric.
func HeightValue(attrs string) *int {
	v, ok := quotedValue(heightAttr, attrs)
	if !ok {
		return nil
	}
	return ParseDimension(v)
}

// ParseDimension reads the leading integer of a dimension value, so "1200px"
// yields 1200 and "auto" yields nil.
func ParseDimension(v string) *int {
	m := leadingInt.FindStringSubmatch(v)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// IsRasterSource checks the lower-cased src against RasterExtensions.
func IsRasterSource(src string) bool {
	lower := strings.ToLower(src)
	for _, ext := range RasterExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ExceedsLargeDimension is true when either dimension is strictly above
// LargeImageDimension.
func ExceedsLargeDimension(width, height *int) bool {
	return (width != nil && *width > LargeImageDimension) ||
		(height != nil && *height > LargeImageDimension)
}

func quotedValue(re *regexp.Regexp, attrs string) (string, bool) {
	m := re.FindStringSubmatch(attrs)
	if m == nil {
		return "", false
	}
	for _, group := range m[1:] {
		if group != "" {
			return html.UnescapeString(group), true
		}
	}
	return "", true
}
