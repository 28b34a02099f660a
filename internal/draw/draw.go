// Package draw renders to ANSI terminals: a scaled half-block canvas, a chunked
// writer for network sessions and a few cursor helpers.
package draw

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// CenterCol returns the 1-based column that centers text within width columns.
// Width is measured in terminal cells, so wide and combining runes count correctly.
func CenterCol(width int, text string) int {
	col := (width-lipgloss.Width(text))/2 + 1
	return max(col, 1)
}

// WriteBlock writes a multi-line block with its top-left corner at (col, row).
// Each line is positioned separately so the block never disturbs cells to its left.
func (cw *ChunkWriter) WriteBlock(col, row int, block string) {
	for i, line := range strings.Split(block, "\n") {
		cw.WriteAt(col, row+i, line)
	}
}

// WriteCentered writes a multi-line block centered horizontally in width
// columns, starting at row.
func (cw *ChunkWriter) WriteCentered(width, row int, block string) {
	col := CenterCol(width, widestLine(block))
	cw.WriteBlock(col, row, block)
}

func widestLine(block string) string {
	widest := ""
	for _, line := range strings.Split(block, "\n") {
		if lipgloss.Width(line) > lipgloss.Width(widest) {
			widest = line
		}
	}
	return widest
}
