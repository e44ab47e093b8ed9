package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"perfsmell/internal/config"
	"perfsmell/internal/model"
	"perfsmell/internal/service"
	"perfsmell/internal/util"
)

type pageAnalyzer interface {
	AnalyzePage(ctx context.Context, targetURL string) (*model.PerformanceAnalysis, error)
}

// analyzeOutcome is one line of analyze output: either the result or the
// error message for that URL.
type analyzeOutcome struct {
	URL    string                     `json:"url"`
	Result *model.PerformanceAnalysis `json:"result,omitempty"`
	Error  string                     `json:"error,omitempty"`
}

func NewAnalyzeCmd() *cobra.Command {
	var (
		parallel int
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze URL [URL...]",
		Short: "Analyze one or more pages and print JSON results",
		Long: `Analyze fetches each page and prints one JSON object per URL, in the
order given. Up to --parallel pages are fetched at once.

Examples:
  perfsmell analyze https://example.com
  perfsmell analyze --parallel 8 https://a.example https://b.example`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallel < 1 {
				return fmt.Errorf("--parallel must be at least 1, got %d", parallel)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			analyzer := service.NewAnalyzer(config.AppConfig)
			return analyzeURLs(ctx, analyzer, args, parallel, pretty, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "Maximum number of pages analyzed at once")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	return cmd
}

// analyzeURLs runs every analysis to completion even when some fail, then
// reports how many failed.
func analyzeURLs(ctx context.Context, analyzer pageAnalyzer, urls []string, parallel int, pretty bool, w io.Writer) error {
	outcomes := make([]analyzeOutcome, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, u := range urls {
		g.Go(func() error {
			outcomes[i].URL = u
			if !util.IsValidURL(u) {
				outcomes[i].Error = fmt.Sprintf("%v: %q is not an absolute http(s) URL", service.ErrMalformedInput, u)
				return nil
			}
			result, err := analyzer.AnalyzePage(gctx, u)
			if err != nil {
				outcomes[i].Error = err.Error()
				return nil
			}
			outcomes[i].Result = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	failed := 0
	for _, o := range outcomes {
		if o.Error != "" {
			failed++
		}
		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", failed, len(urls))
	}
	return nil
}
