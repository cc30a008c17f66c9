package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	listWidth    int
	resultRows   int
	recentRows   int
}

func newPageLayout() pageLayout {
	return pageLayout{
		listWidth:  80,
		resultRows: 8,
		recentRows: 10,
	}
}

// Update splits the rows left over after the fixed chrome between the open
// result list and the recent transactions table.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - horizontalPadding
	if innerWidth < minListWidth {
		innerWidth = minListWidth
	}
	l.listWidth = innerWidth
	const chrome = 18
	usable := height - chrome
	if usable < 6 {
		usable = 6
	}
	l.resultRows = min(max(usable/2, 3), 12)
	l.recentRows = max(usable-l.resultRows, 3)
}

// resultWindow returns the slice bounds of at most rows results that keep
// the highlighted one visible.
func resultWindow(total, highlighted, rows int) (int, int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	start := 0
	if highlighted >= rows {
		start = highlighted - rows + 1
	}
	return start, start + rows
}

func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "…")
}

var weightPrinter = message.NewPrinter(language.English)

// formatWeight renders pounds with thousands separators.
func formatWeight(lb int) string {
	return weightPrinter.Sprintf("%d lb", lb)
}

func formatTons(lb int) string {
	return fmt.Sprintf("%.2f t", float64(lb)/poundsPerTon)
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
