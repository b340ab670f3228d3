package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"drills/internal/config"
	"drills/internal/log"
	"drills/internal/loganalyzer"
	"drills/internal/logwatch"
)

var (
	logstatsShowIssues   bool
	logstatsIssueUnknown bool
	logstatsWatch        bool
)

var logstatsCmd = &cobra.Command{
	Use:   "logstats <file> [level]",
	Short: "Analyze a log file and show per-level statistics",
	Long: `Logstats reads a log file with one entry per line, formatted as

    YYYY-MM-DD HH:MM:SS LEVEL Message text

and prints a table counting entries per log level. An optional second
argument filters detailed output to a single level.

Lines that do not match the format are reported as issues. With
--issue-unknown, levels outside ERROR, WARNING, INFO and DEBUG (plus any
known_levels from drills.toml) count as issues too.

With --watch the table is kept on screen and refreshed whenever the file
changes.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		setupLogging(cfg)

		path := args[0]
		level := ""
		if len(args) > 1 {
			level = args[1]
		}

		parser := newLogParser(cfg)

		if logstatsWatch {
			if err := runWatchMode(path, parser); err != nil {
				log.Error(err.Error())
				os.Exit(1)
			}
			return
		}

		entries, err := parser.Load(path)
		if err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}

		stats := loganalyzer.CountByLevel(entries)
		fmt.Println(loganalyzer.RenderCounts(stats))

		if report := loganalyzer.RenderIssueReport(entries, stats, logstatsShowIssues); report != "" {
			fmt.Println()
			fmt.Println(report)
		}

		if level != "" {
			filtered := loganalyzer.FilterByLevel(entries, level)
			fmt.Println()
			fmt.Println(loganalyzer.RenderDetails(filtered, level))
		}
	},
}

func newLogParser(cfg *config.Config) *loganalyzer.Parser {
	return loganalyzer.NewParser(logstatsIssueUnknown, cfg.KnownLevels...)
}

func runWatchMode(path string, parser *loganalyzer.Parser) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := loganalyzer.ValidatePath(absPath); err != nil {
		return err
	}

	m := logwatch.NewModel(absPath, parser)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Reload diagnostics go into the TUI footer, not stderr
	parser.Logger = log.NewCallbackLogger(func(record slog.Record) {
		p.Send(logwatch.LogNote(record))
	}, log.GetCurrentLevel())

	watcher, err := logwatch.NewFileWatcher(absPath, func() {
		p.Send(logwatch.FileChanged())
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}

func init() {
	logstatsCmd.Flags().BoolVar(&logstatsShowIssues, "issues", false, "show lines with issues")
	logstatsCmd.Flags().BoolVar(&logstatsIssueUnknown, "issue-unknown", false, "treat unknown log levels as issues")
	logstatsCmd.Flags().BoolVarP(&logstatsWatch, "watch", "w", false, "keep the statistics on screen and refresh on changes")
	rootCmd.AddCommand(logstatsCmd)
}
