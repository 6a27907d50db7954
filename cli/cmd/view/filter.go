package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Styles.
var (
	gutterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	signatureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
)

// filterLines returns the lines matching query in their original order. An
// empty query matches every line with nothing highlighted.
func filterLines(lines []string, query string) fuzzy.Matches {
	if strings.TrimSpace(query) == "" {
		matches := make(fuzzy.Matches, len(lines))
		for i, line := range lines {
			matches[i] = fuzzy.Match{Str: line, Index: i}
		}

		return matches
	}

	return fuzzy.FindNoSort(query, lines)
}

// Highlight renders the matched string with the characters at its matched
// indexes styled by hi and all others by base.
func Highlight(match fuzzy.Match, base, hi lipgloss.Style) string {
	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(hi.Render(ch))
		} else {
			b.WriteString(base.Render(ch))
		}
	}

	return b.String()
}

// renderLines renders matches as numbered source lines. Line numbers refer
// to the unfiltered source and are padded to the width of total.
func renderLines(matches fuzzy.Matches, total int) string {
	width := len(fmt.Sprint(total))

	var b strings.Builder

	for i, match := range matches {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d ", width, match.Index+1)))
		b.WriteString(Highlight(match, sourceStyle, highlightStyle))
	}

	return b.String()
}
