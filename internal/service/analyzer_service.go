package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"perfsmell/internal/config"
	"perfsmell/internal/log"
	"perfsmell/internal/model"
	"perfsmell/internal/util"
)

// Analyzer fetches pages and scores them. It holds no per-page state and is
// safe for concurrent use.
type Analyzer struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

type Option func(*Analyzer)

// WithHTTPClient replaces the client built from the configured timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Analyzer) {
		a.client = c
	}
}

func NewAnalyzer(cfg *config.Config, opts ...Option) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &Analyzer{
		client:       &http.Client{Timeout: cfg.FetchTimeout},
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzePage fetches targetURL and returns its performance smell analysis.
// Any fetch problem aborts the analysis; no partial result is returned.
func (a *Analyzer) AnalyzePage(ctx context.Context, targetURL string) (*model.PerformanceAnalysis, error) {
	if !util.IsValidURL(targetURL) {
		pageAnalysesTotal.WithLabelValues(outcomeInvalid).Inc()
		return nil, fmt.Errorf("%w: %q is not an absolute http(s) URL", ErrMalformedInput, targetURL)
	}

	page, err := a.fetchHTML(ctx, targetURL)
	if err != nil {
		pageAnalysesTotal.WithLabelValues(outcomeFetchFailure).Inc()
		return nil, err
	}

	result := AnalyzeHTML(page.URL, page.HTML)
	pageAnalysesTotal.WithLabelValues(outcomeSuccess).Inc()
	smellScore.Observe(float64(result.PerformanceSmellScore))

	log.Logger.Info("page analyzed",
		zap.String("url", targetURL),
		zap.Int("score", result.PerformanceSmellScore),
		zap.Int("total_scripts", result.TotalScripts),
		zap.Int("total_images", result.TotalImages),
	)

	return result, nil
}

// AnalyzeHTML runs extraction, scoring and reporting over markup that has
// already been fetched. The same input always yields the same result.
func AnalyzeHTML(pageURL, rawHTML string) *model.PerformanceAnalysis {
	scripts := summarizeScripts(extractScripts(rawHTML))
	images := summarizeImages(extractImages(rawHTML))
	score := computeScore(scripts, images)
	return buildReport(pageURL, scripts, images, score)
}

// retrieves the page body as UTF-8 text
func (a *Analyzer) fetchHTML(ctx context.Context, targetURL string) (*model.PageSource, error) {
	start := time.Now()
	defer func() {
		fetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, &FetchError{URL: targetURL, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Logger.Error("failed to fetch URL",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, &FetchError{URL: targetURL, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Logger.Warn("unexpected status code",
			zap.String("url", targetURL),
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, &FetchError{URL: targetURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, a.maxBodyBytes+1))
	if err != nil {
		log.Logger.Warn("failed to read response body",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, &FetchError{URL: targetURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if int64(len(body)) > a.maxBodyBytes {
		return nil, &FetchError{URL: targetURL, Err: fmt.Errorf("response body exceeds %d bytes", a.maxBodyBytes)}
	}

	rawHTML, err := decodeUTF8(body, resp.Header.Get("Content-Type"))
	if err != nil {
		log.Logger.Warn("failed to decode response body",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return nil, &FetchError{URL: targetURL, Err: fmt.Errorf("failed to decode response body: %w", err)}
	}

	log.Logger.Debug("successfully fetched HTML",
		zap.String("url", targetURL),
		zap.Int("content_length", len(rawHTML)),
		zap.Int("status_code", resp.StatusCode),
	)

	return &model.PageSource{URL: targetURL, HTML: rawHTML}, nil
}

// decodeUTF8 returns valid UTF-8 bodies untouched. Anything else is converted
// using the Content-Type charset, a <meta charset> in the first bytes, or
// content sniffing, in that order.
func decodeUTF8(body []byte, contentType string) (string, error) {
	if utf8.Valid(body) {
		return string(body), nil
	}
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// IsTimeout reports whether err came from a fetch that ran out of time.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
