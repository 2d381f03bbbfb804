package engine

import (
	"strings"

	"github.com/Kajalyadav4/Personal-Finance-Assistant/internal/models"
)

// SegmentLines splits raw statement text into trimmed, non-empty lines,
// preserving source order. Empty input yields an empty sequence.
func SegmentLines(text string) []models.RawLine {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []models.RawLine
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lines = append(lines, models.RawLine{Text: trimmed, Original: raw})
	}
	return lines
}
