package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSeq = "\x1b[0m"

// Overlay draws top onto base with top's upper-left corner at column x,
// row y. Rows of base outside top's extent are returned unchanged.
func Overlay(base, top string, x, y int) string {
	if top == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], line, x)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine overwrites columns [x, x+width(top)) of base with top,
// padding base with spaces when it ends before the splice begins.
func spliceLine(base, top string, x int) string {
	if x < 0 {
		x = 0
	}

	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	if strings.Contains(left, "\x1b") {
		// Close any style the cut left open.
		left += resetSeq
	}

	var right string
	if end := x + ansi.StringWidth(top); end < ansi.StringWidth(base) {
		right = ansi.TruncateLeft(base, end, "")
	}
	return left + top + right
}
