package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sase-site/sitegen/internal/config"
	"github.com/sase-site/sitegen/internal/logger"
	"github.com/sase-site/sitegen/internal/site"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagRoot     string
	flagConfig   string
	flagFormat   string
	flagLogLevel string
	flagVerbose  bool
)

var pageDescriptions = map[string]string{
	site.PageCalendar: "Regenerate the event cards and detail modals of the calendar page",
	site.PageRoster:   "Regenerate the executive board cards of the team page",
	site.PageGallery:  "Regenerate the past event gallery",
	site.PageLanding:  "Regenerate the slideshow, announcements and event previews of the landing page",
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitegen",
		Short: "Regenerate the static site pages from the CSV sheets",
		Long: `A CLI tool that rewrites the generated sections of the static site.
Each page keeps everything outside its marker comments byte for byte and
gets fresh content between them, built from the CSV sheets and image folders.
Without a subcommand every page is regenerated in order: calendar, roster,
gallery, landing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd)
		},
	}

	// Define flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&flagRoot, "root", ".", "Site checkout that page and data paths are relative to")
	flags.StringVar(&flagConfig, "config", "", "YAML file overriding the default paths")
	flags.StringVar(&flagFormat, "format", "text", "Output format: text or json")
	flags.StringVar(&flagLogLevel, "log-level", "INFO", "Minimum log level: DEBUG, INFO, WARN or ERROR")
	flags.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and include run metrics")

	for _, name := range site.Pages {
		cmd.AddCommand(newPageCmd(name))
	}
	cmd.AddCommand(newInspectCmd())

	return cmd
}

func newPageCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: pageDescriptions[name],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(cmd, name)
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "inspect [page...]",
		Short:     "Report how many generated items each page region holds",
		Long:      "Reads the pages without modifying them. Pages whose markers cannot be found are reported as problems.",
		ValidArgs: site.Pages,
		Args:      cobra.OnlyValidArgs,
		RunE:      runInspect,
	}
}

// runPages regenerates the named pages, or all of them, and reports the results
func runPages(cmd *cobra.Command, names ...string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	gen, cfg, err := newGenerator(cmd, format)
	if err != nil {
		return err
	}

	results, runErr := gen.Run(names...)

	out := NewRunOutput(cfg.Root, results)
	if flagVerbose {
		snap := logger.GetMetricsSnapshot()
		out.Metrics = &snap
	}

	if err := WriteOutput(cmd.OutOrStdout(), out, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return runErr
}

// runInspect reports the current content of the generated regions
func runInspect(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	gen, cfg, err := newGenerator(cmd, format)
	if err != nil {
		return err
	}

	out := &InspectOutput{
		InspectedAt: time.Now().UTC(),
		Root:        cfg.Root,
	}
	if len(args) == 0 {
		reports, err := gen.InspectAll()
		if err != nil {
			return fmt.Errorf("inspecting pages: %w", err)
		}
		out.Reports = reports
	} else {
		out.Reports = make([]site.Report, 0, len(args))
		for _, name := range args {
			report, err := gen.Inspect(name)
			if err != nil {
				return fmt.Errorf("inspecting %s: %w", name, err)
			}
			out.Reports = append(out.Reports, report)
		}
	}

	if err := WriteInspect(cmd.OutOrStdout(), out, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// newGenerator loads the configuration and sets up logging. JSON output keeps
// stdout parseable, so log lines go to stderr in that mode.
func newGenerator(cmd *cobra.Command, format OutputFormat) (*site.Generator, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	cfg.Root = flagRoot

	level, err := parseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}

	var logOut io.Writer = cmd.OutOrStdout()
	if format == FormatJSON {
		logOut = cmd.ErrOrStderr()
	}
	log := logger.New(level, logOut)
	logger.SetDefault(log)

	logger.Debug("Configuration loaded", logger.Fields{
		"root":   cfg.Root,
		"config": flagConfig,
	})

	return site.New(cfg, log), cfg, nil
}

func parseFormat(value string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(value))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", value)
	}
	return format, nil
}

func parseLevel(value string) (logger.Level, error) {
	name := strings.ToUpper(value)
	level := logger.ParseLevel(name)
	if string(level) != name {
		return "", fmt.Errorf("invalid log level: %s (must be DEBUG, INFO, WARN or ERROR)", value)
	}
	return level, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
