// Package loganalyzer parses plain-text log files and aggregates per-level
// statistics. Lines follow the format:
//
//	YYYY-MM-DD HH:MM:SS LEVEL Message text
//
// The level policy is permissive: any run of uppercase letters is accepted
// as a level, and unknown levels are only flagged when asked for.
package loganalyzer

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

var linePattern = regexp.MustCompile(
	`^(?P<date>\d{4}-\d{2}-\d{2})\s` +
		`(?P<time>\d{2}:\d{2}:\d{2})\s` +
		`(?P<level>[A-Z]+)\s` +
		`(?P<message>.+)$`,
)

// DefaultKnownLevels returns the levels recognized out of the box.
func DefaultKnownLevels() []string {
	return []string{"ERROR", "WARNING", "INFO", "DEBUG"}
}

// Entry is a single parsed log line. Either the four value fields are set,
// or Issue describes why the line was not accepted.
type Entry struct {
	Date    string
	Time    string
	Level   string
	Message string

	// Issue carries the line number, cause and raw content for lines that
	// failed to parse or carried an unknown level
	Issue string
}

// HasIssue reports whether the entry describes a rejected line
func (e Entry) HasIssue() bool {
	return e.Issue != ""
}

// Parser turns log lines into entries.
type Parser struct {
	// IssueUnknownLevels flags lines whose level is not in the known set
	IssueUnknownLevels bool

	// Logger receives parse diagnostics; nil means slog.Default()
	Logger *slog.Logger

	knownLevels map[string]struct{}
}

// NewParser creates a parser. extraLevels extends the built-in known set,
// typically from the known_levels config field.
func NewParser(issueUnknownLevels bool, extraLevels ...string) *Parser {
	known := make(map[string]struct{})
	for _, l := range DefaultKnownLevels() {
		known[l] = struct{}{}
	}
	for _, l := range extraLevels {
		known[strings.ToUpper(strings.TrimSpace(l))] = struct{}{}
	}
	return &Parser{
		IssueUnknownLevels: issueUnknownLevels,
		knownLevels:        known,
	}
}

// ParseLine parses a single log line into its components.
func (p *Parser) ParseLine(line string, lineNumber int) Entry {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{Issue: fmt.Sprintf("line: %d: (INVALID FORMAT) %s", lineNumber, line)}
	}

	if p.IssueUnknownLevels {
		if _, ok := p.knownLevels[m[3]]; !ok {
			return Entry{Issue: fmt.Sprintf("line: %d: (UNKNOWN LOG LEVEL) %s", lineNumber, line)}
		}
	}

	return Entry{
		Date:    m[1],
		Time:    m[2],
		Level:   m[3],
		Message: m[4],
	}
}

// Load validates the path, then reads and parses the file line by line.
// Blank lines are skipped; unparsable lines become issue entries.
func (p *Parser) Load(path string) ([]Entry, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open '%s': %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	issues := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry := p.ParseLine(line, lineNumber)
		if entry.HasIssue() {
			issues++
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	p.logger().Debug("parsed log file",
		slog.String("file", path),
		slog.Int("entries", len(entries)),
		slog.Int("issues", issues))

	return entries, nil
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
