package render

import (
	"github.com/nnchaudhuri/skyclock/terminal"
)

// Buffer is a compositor backed by a terminal.Cell array
// Uses []terminal.Cell directly to allow zero-copy export to the terminal
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
	clear  terminal.Cell
}

// NewBuffer creates a buffer with the specified dimensions and a background
// color. Cells start as upper-half-block runes so the canvas can address
// two vertical pixels per cell
func NewBuffer(width, height int, bg RGB) *Buffer {
	b := &Buffer{
		clear: terminal.Cell{Rune: PixelRune, Fg: bg, Bg: bg},
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.clear
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Width returns buffer width in cells
func (b *Buffer) Width() int { return b.width }

// Height returns buffer height in cells
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at x, y; zero cell when out of bounds
func (b *Buffer) Cell(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetCell overwrites the cell at x, y
func (b *Buffer) SetCell(x, y int, c terminal.Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Text writes a string starting at x, y in the given colors, replacing
// whatever pixels occupied those cells
func (b *Buffer) Text(x, y int, s string, fg, bg RGB) {
	for _, r := range s {
		if !b.inBounds(x, y) {
			return
		}
		b.cells[y*b.width+x] = terminal.Cell{Rune: r, Fg: fg, Bg: bg}
		x++
	}
}

// Flush exports the cell array to the terminal
func (b *Buffer) Flush(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
