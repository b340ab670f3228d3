package loganalyzer

import (
	"fmt"
	"strings"
)

const (
	headerLevel     = "Log Level"
	headerCount     = "Count"
	issueRowLabel   = "Log line with issue"
	noLevelsMessage = "No valid log level found"

	// IssuesFlag is named in the hint shown when issues exist but were
	// not requested
	IssuesFlag = "--issues"
)

// RenderCounts formats per-level statistics as a fixed-width table:
//
//	Log Level | Count
//	----------|------
//	INFO      | 4
//	DEBUG     | 3
//
// Column widths grow with the content. When rejected lines exist, a
// summary row is appended after a blank row.
func RenderCounts(stats Stats) string {
	levelWidth := len(headerLevel)
	countWidth := len(headerCount)

	for _, lc := range stats.Levels {
		levelWidth = max(levelWidth, len(lc.Level))
		countWidth = max(countWidth, len(fmt.Sprint(lc.Count)))
	}
	if stats.Issues > 0 {
		levelWidth = max(levelWidth, len(issueRowLabel))
		countWidth = max(countWidth, len(fmt.Sprint(stats.Issues)))
	}
	if len(stats.Levels) == 0 {
		levelWidth = max(levelWidth, len(noLevelsMessage))
	}

	var b strings.Builder
	writeRow := func(left, right string) {
		if right == "" {
			fmt.Fprintf(&b, "%-*s|\n", levelWidth+1, left)
			return
		}
		fmt.Fprintf(&b, "%-*s| %s\n", levelWidth+1, left, right)
	}

	writeRow(headerLevel, headerCount)
	fmt.Fprintf(&b, "%s|%s\n", strings.Repeat("-", levelWidth+1), strings.Repeat("-", countWidth+1))

	if len(stats.Levels) == 0 {
		writeRow(noLevelsMessage, "")
	}
	for _, lc := range stats.Levels {
		writeRow(lc.Level, fmt.Sprint(lc.Count))
	}

	if stats.Issues > 0 {
		writeRow("", "")
		writeRow(issueRowLabel, fmt.Sprint(stats.Issues))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderIssueReport formats the issue summary according to whether issues
// exist and whether the user asked to see them:
//
//	issues found   showIssues   result
//	yes            yes          full listing
//	yes            no           hint naming the flag
//	no             yes          confirmation
//	no             no           empty string
func RenderIssueReport(entries []Entry, stats Stats, showIssues bool) string {
	if stats.Issues > 0 {
		if !showIssues {
			return fmt.Sprintf(
				"[WARNING] Found %d issues with logs. To show all logs with issues, please provide '%s' argument.",
				stats.Issues, IssuesFlag)
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Found the following %d issues with logs:", stats.Issues)
		for _, e := range entries {
			if e.HasIssue() {
				fmt.Fprintf(&b, "\nIssue at %s", e.Issue)
			}
		}
		return b.String()
	}

	if showIssues {
		return "There were no issues with your logs."
	}
	return ""
}

// RenderDetails formats the given (already filtered) entries line by line.
// The level is shown per line only when several distinct levels are present.
func RenderDetails(entries []Entry, level string) string {
	if len(entries) == 0 {
		label := "your"
		if level != "" {
			label = fmt.Sprintf("'%s'", strings.ToUpper(level))
		}
		return fmt.Sprintf("There are no logs matching %s log level.", label)
	}

	// Distinct levels in first-seen order
	seen := make(map[string]struct{})
	var foundLevels []string
	for _, e := range entries {
		if e.Level == "" {
			continue
		}
		if _, ok := seen[e.Level]; !ok {
			seen[e.Level] = struct{}{}
			foundLevels = append(foundLevels, e.Level)
		}
	}

	var b strings.Builder
	if len(foundLevels) > 1 {
		fmt.Fprintf(&b, "Logs details for levels '%s':", strings.Join(foundLevels, ", "))
	} else {
		fmt.Fprintf(&b, "Logs details for level '%s':", strings.Join(foundLevels, ", "))
	}

	for _, e := range entries {
		prefix := ""
		if len(foundLevels) > 1 {
			prefix = e.Level + " "
		}
		fmt.Fprintf(&b, "\n%s %s %s- %s", e.Date, e.Time, prefix, e.Message)
	}

	return b.String()
}
