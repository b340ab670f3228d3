package loganalyzer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderCounts(t *testing.T) {
	stats := Stats{
		Levels: []LevelCount{
			{Level: "INFO", Count: 4},
			{Level: "DEBUG", Count: 3},
			{Level: "ERROR", Count: 2},
			{Level: "WARNING", Count: 1},
		},
	}

	expected := strings.Join([]string{
		"Log Level | Count",
		"----------|------",
		"INFO      | 4",
		"DEBUG     | 3",
		"ERROR     | 2",
		"WARNING   | 1",
	}, "\n")

	if diff := cmp.Diff(expected, RenderCounts(stats)); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCountsWithIssues(t *testing.T) {
	stats := Stats{
		Levels: []LevelCount{{Level: "INFO", Count: 2}},
		Issues: 3,
	}

	// The issue label widens the level column for every row, and a blank
	// spacer row separates the issues row from the level rows
	expected := strings.Join([]string{
		"Log Level           | Count",
		"--------------------|------",
		"INFO                | 2",
		"                    |",
		"Log line with issue | 3",
	}, "\n")

	if diff := cmp.Diff(expected, RenderCounts(stats)); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderCountsNoLevels(t *testing.T) {
	got := RenderCounts(Stats{})
	if !strings.Contains(got, "No valid log level found") {
		t.Errorf("missing placeholder in:\n%s", got)
	}
}

func TestRenderIssueReport(t *testing.T) {
	issueEntries := []Entry{
		{Level: "INFO", Date: "2024-01-22", Time: "08:30:01", Message: "fine"},
		{Issue: "line: 2: (INVALID FORMAT) broken line"},
	}

	tests := []struct {
		name       string
		entries    []Entry
		stats      Stats
		showIssues bool
		contains   string
	}{
		{
			name:       "issues shown",
			entries:    issueEntries,
			stats:      Stats{Issues: 1},
			showIssues: true,
			contains:   "Issue at line: 2: (INVALID FORMAT) broken line",
		},
		{
			name:     "issues hinted",
			entries:  issueEntries,
			stats:    Stats{Issues: 1},
			contains: "please provide '--issues' argument",
		},
		{
			name:       "no issues confirmation",
			stats:      Stats{},
			showIssues: true,
			contains:   "There were no issues with your logs.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderIssueReport(tt.entries, tt.stats, tt.showIssues)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("expected %q in:\n%s", tt.contains, got)
			}
		})
	}
}

func TestRenderIssueReportSilent(t *testing.T) {
	if got := RenderIssueReport(nil, Stats{}, false); got != "" {
		t.Errorf("expected empty report, got %q", got)
	}
}

func TestRenderDetails(t *testing.T) {
	entries := []Entry{
		{Date: "2024-01-22", Time: "09:00:45", Level: "ERROR", Message: "Database connection failed."},
		{Date: "2024-01-22", Time: "11:30:15", Level: "ERROR", Message: "Backup process failed."},
	}

	expected := strings.Join([]string{
		"Logs details for level 'ERROR':",
		"2024-01-22 09:00:45 - Database connection failed.",
		"2024-01-22 11:30:15 - Backup process failed.",
	}, "\n")

	if diff := cmp.Diff(expected, RenderDetails(entries, "error")); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderDetailsMultipleLevels(t *testing.T) {
	entries := []Entry{
		{Date: "2024-01-22", Time: "09:00:45", Level: "ERROR", Message: "Database connection failed."},
		{Date: "2024-01-22", Time: "10:30:55", Level: "WARNING", Message: "Disk usage above 80%."},
	}

	got := RenderDetails(entries, "")
	if !strings.Contains(got, "levels 'ERROR, WARNING'") {
		t.Errorf("expected multi-level title in %q", got)
	}
	if !strings.Contains(got, "2024-01-22 09:00:45 ERROR - Database connection failed.") {
		t.Errorf("expected level prefix per line in:\n%s", got)
	}
}

func TestRenderDetailsEmpty(t *testing.T) {
	got := RenderDetails(nil, "fatal")
	if got != "There are no logs matching 'FATAL' log level." {
		t.Errorf("unexpected message: %q", got)
	}
}
