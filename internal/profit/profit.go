// Package profit extracts numeric amounts from free-form text and sums them.
package profit

import (
	"iter"
	"regexp"
	"strconv"
)

// numberPattern matches amounts like 1000.01, 27.45 or plain integers,
// delimited by word boundaries so digits inside identifiers are ignored.
var numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

// Extractor yields numbers found in a text, in order of appearance.
type Extractor func(text string) iter.Seq[float64]

// Numbers returns a sequence of every valid number found in the text.
func Numbers(text string) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, m := range numberPattern.FindAllString(text, -1) {
			v, err := strconv.ParseFloat(m, 64)
			if err != nil {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Sum folds the extractor's output over the text into a total. The extractor
// is a parameter so callers can swap in a different number policy.
func Sum(text string, numbers Extractor) float64 {
	var total float64
	for v := range numbers(text) {
		total += v
	}
	return total
}
