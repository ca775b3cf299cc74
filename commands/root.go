package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/penwyp/go-gh-heat/internal/config"
	"github.com/penwyp/go-gh-heat/internal/core/heatmap"
	"github.com/penwyp/go-gh-heat/internal/core/model"
	"github.com/penwyp/go-gh-heat/internal/core/source"
	"github.com/penwyp/go-gh-heat/internal/metrics"
	"github.com/penwyp/go-gh-heat/internal/presentation/formatter"
	"github.com/penwyp/go-gh-heat/internal/presentation/layout"
	"github.com/penwyp/go-gh-heat/internal/presentation/render"
	"github.com/penwyp/go-gh-heat/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultDays = 365

type options struct {
	// Logging related
	debug bool

	// Data range
	days int

	// Rendering
	darkMode   bool
	useSymbols bool
	useNumbers bool
	showTotals bool
	noColor    bool

	// Output related
	outputFormat string
	timezone     string

	// Configuration
	configFile  string
	metricsFile string
}

// NewRootCmd builds the go-gh-heat command with its own flag set.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "go-gh-heat <username> [flags]",
		Short: "GitHub contribution heatmap for the terminal",
		Long: `go-gh-heat draws a GitHub user's daily contributions as a calendar heatmap.

Data comes from the GraphQL API when GITHUB_TOKEN is set, otherwise from the
public contributions page. When neither yields data, simulated activity is
shown so the layout can still be inspected.

Examples:
  go-gh-heat octocat                      # Green heatmap of the last year
  go-gh-heat octocat --dark-mode --totals # Red heatmap followed by totals
  go-gh-heat octocat --symbols            # ASCII glyphs instead of colors
  go-gh-heat octocat --numbers            # Raw daily counts
  go-gh-heat octocat --output json        # Machine-readable output`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeatmap(cmd, opts, args[0])
		},
	}

	// Data range
	cmd.Flags().IntVarP(&opts.days, "days", "d", defaultDays,
		"Number of days of history to request")

	// Rendering
	cmd.Flags().BoolVarP(&opts.darkMode, "dark-mode", "D", false,
		"Use the red palette for dark terminals")
	cmd.Flags().BoolVarP(&opts.useSymbols, "symbols", "s", false,
		"Draw cells with ASCII glyphs")
	cmd.Flags().BoolVarP(&opts.useNumbers, "numbers", "n", false,
		"Draw raw daily counts (overrides --symbols)")
	cmd.Flags().BoolVarP(&opts.showTotals, "totals", "t", false,
		"Print the contribution summary")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"Disable ANSI colors")

	// Output configuration
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", model.OutputHeatmap,
		"Output format (heatmap, json)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "Local",
		"Timezone used to decide today (e.g., Asia/Shanghai, UTC)")

	// Configuration and diagnostics
	cmd.Flags().StringVar(&opts.configFile, "config", "",
		"Path to a YAML config file")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "",
		"Write fetch metrics in Prometheus text format to this path")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug mode")

	return cmd
}

func runHeatmap(cmd *cobra.Command, opts *options, username string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username must not be empty", config.ErrInvalidConfig)
	}

	cfg, err := config.Load(ctx, opts.configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, opts, cfg); err != nil {
		return err
	}

	// Initialize logging
	loggerCfg := util.LoggerConfig{Level: cfg.LogLevel, File: expandPath(cfg.LogFile)}
	if opts.debug {
		loggerCfg.Console = stderr
	}
	if err := util.InitLogger(loggerCfg, util.F("run_id", uuid.NewString())); err != nil {
		fmt.Fprintf(stderr, "Warning: %v, logging to file disabled\n", err)
		loggerCfg.File = ""
		_ = util.InitLogger(loggerCfg)
	}
	defer util.CloseLogger()

	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	util.LogInfo("Starting heatmap",
		util.F("username", username),
		util.F("days", opts.days),
		util.F("output", opts.outputFormat),
		util.F("token", cfg.HasToken()))

	recorder := metrics.NewRecorder()
	if opts.metricsFile != "" {
		defer func() {
			path := expandPath(opts.metricsFile)
			if err := recorder.WriteTextfile(path); err != nil {
				util.LogWarnf("Failed to write metrics to %s: %v", path, err)
			}
		}()
	}

	client := source.NewClient(source.Config{
		GraphQLURL: cfg.GraphQLURL,
		ProfileURL: cfg.ProfileURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		Notices:    stderr,
		Metrics:    recorder,
	})

	result, err := client.Fetch(ctx, source.Request{
		Username: username,
		Days:     opts.days,
		Token:    cfg.Token,
	})
	if err != nil {
		util.LogErrorf("Fetch failed: %v", err)
		return err
	}

	today := model.DateOf(util.GetTimeProvider().Now())
	grid := heatmap.BuildGrid(result.Contributions, today)
	summary := heatmap.Summarize(result.Contributions, today)
	report := formatter.NewReport(username, result.Tier, grid, result.Contributions, summary)

	util.LogInfo("Fetched contributions",
		util.F("tier", result.Tier),
		util.F("records", len(result.Contributions)),
		util.F("total", summary.Total))

	color := !cfg.NoColor && isTerminal(stdout)
	return writeOutput(stdout, opts, color, grid, result.Contributions, report)
}

// applyFlags lets explicitly set flags win over the loaded config.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	if cmd.Flags().Changed("timezone") {
		cfg.Timezone = opts.timezone
	}
	if opts.noColor {
		cfg.NoColor = true
	}
	if opts.debug {
		cfg.LogLevel = "debug"
	}

	if opts.days <= 0 {
		return fmt.Errorf("%w: --days must be positive, got %d", config.ErrInvalidConfig, opts.days)
	}
	switch opts.outputFormat {
	case model.OutputHeatmap, model.OutputJSON:
	default:
		return fmt.Errorf("%w: unsupported output format %q", config.ErrInvalidConfig, opts.outputFormat)
	}
	return nil
}

func writeOutput(out io.Writer, opts *options, color bool, grid heatmap.Grid, records model.Contributions, report formatter.Report) error {
	if opts.outputFormat == model.OutputJSON {
		return formatter.NewJSONFormatter(out).Format(report)
	}

	if termWidth, ok := layout.NewSizer().TerminalWidth(out); ok {
		if n := layout.Overflow(grid.Width(), termWidth); n > 0 {
			util.LogWarnf("Heatmap is %d columns wider than the terminal (%d)", n, termWidth)
		}
	}

	renderer := render.NewRenderer(out, render.Options{
		Mode:     render.ResolveMode(opts.useSymbols, opts.useNumbers),
		DarkMode: opts.darkMode,
		Color:    color,
	})
	if err := renderer.Render(grid, records); err != nil {
		return err
	}
	if opts.showTotals {
		return formatter.NewSummaryFormatter(out, color).Format(report)
	}
	return nil
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("interrupted: %w", err)
	}
	return err
}

// Helper functions

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
