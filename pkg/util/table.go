package util

import (
	"fmt"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Cells are
// right-aligned within their column, and every column is as wide as its widest
// cell (subject to any maximum width).
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new table with given dimensions.
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
	}

	return &TablePrinter{widths, rows}
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// SetRow sets the contents of an entire row in this table
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		Unrecoverable("incorrect number of columns (%d vs %d)", len(vals), len(p.widths))
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetMaxWidth puts an upper bound on the width of any column.  Cells wider
// than this are truncated.
func (p *TablePrinter) SetMaxWidth(m uint) {
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = min(p.widths[i], m)
	}
}

// Lines renders each row of this table as a line of text.
func (p *TablePrinter) Lines() []string {
	var (
		lines   = make([]string, len(p.rows))
		builder strings.Builder
	)
	//
	for i, row := range p.rows {
		for j, col := range row {
			width := p.widths[j]
			//
			if uint(len(col)) > width {
				col = col[0:width]
			}
			//
			fmt.Fprintf(&builder, " %*s |", width, col)
		}
		//
		lines[i] = builder.String()
		builder.Reset()
	}
	//
	return lines
}

// Print the table.
func (p *TablePrinter) Print() {
	for _, line := range p.Lines() {
		fmt.Println(line)
	}
}
