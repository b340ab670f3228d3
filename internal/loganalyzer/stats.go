package loganalyzer

import (
	"sort"
	"strings"
)

// LevelCount pairs a log level with its number of occurrences.
type LevelCount struct {
	Level string
	Count int
}

// Stats holds the aggregated result of a log file analysis.
type Stats struct {
	// Levels is ordered by count descending; ties keep first-seen order
	Levels []LevelCount

	// Issues counts rejected lines
	Issues int
}

// CountByLevel counts entries per level and rejected lines separately.
func CountByLevel(entries []Entry) Stats {
	counts := make(map[string]int)
	var order []string
	issues := 0

	for _, e := range entries {
		if e.HasIssue() {
			issues++
			continue
		}
		if _, seen := counts[e.Level]; !seen {
			order = append(order, e.Level)
		}
		counts[e.Level]++
	}

	levels := make([]LevelCount, 0, len(order))
	for _, level := range order {
		levels = append(levels, LevelCount{Level: level, Count: counts[level]})
	}
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Count > levels[j].Count
	})

	return Stats{Levels: levels, Issues: issues}
}

// FilterByLevel returns the entries whose level matches, case-insensitively.
// Issue entries never match.
func FilterByLevel(entries []Entry, level string) []Entry {
	var filtered []Entry
	for _, e := range entries {
		if e.HasIssue() {
			continue
		}
		if strings.EqualFold(e.Level, level) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
