// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter lays out a fixed grid of cells as right-aligned columns, with
// optional ANSI escapes per cell.
type TablePrinter struct {
	widths        []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs an empty table with a given number of columns
// (width) and rows (height).
func NewTablePrinter(width uint, height uint) *TablePrinter {
	widths := make([]uint, width)
	rows := make([][]string, height)
	escapes := make([][]string, height)
	// Construct the table
	for i := uint(0); i < height; i++ {
		rows[i] = make([]string, width)
		escapes[i] = make([]string, width)
	}
	//
	return &TablePrinter{widths, rows, escapes, true}
}

// Set the contents of a given cell.
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], cellWidth(val))
	p.rows[row][col] = val
}

// Get the contents of a given cell.
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// SetEscape sets the ANSI escape used when printing a given cell.
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// SetRowEscape sets the ANSI escape used for every cell of a given row.
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.widths {
		p.SetEscape(uint(col), row, escape)
	}
}

// AnsiEscapes enables or disables escapes when printing.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetRow sets the contents of every cell in a given row.
func (p *TablePrinter) SetRow(row uint, vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	for i, val := range vals {
		p.Set(uint(i), row, val)
	}
}

// SetMaxWidth limits the width of a given column.  Cells which are wider are
// truncated when printed.
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.widths[col] = min(p.widths[col], width)
}

// Print writes this table to a given writer.
func (p *TablePrinter) Print(w io.Writer) error {
	var builder strings.Builder
	//
	for i, row := range p.rows {
		for j, col := range row {
			width := p.widths[j]
			escape := p.escapes[i][j]
			// Print colour (if applicable)
			if p.enableEscapes && escape != "" {
				builder.WriteString(escape)
			}
			// Print data
			if cellWidth(col) > width && width > 2 {
				fmt.Fprintf(&builder, " %*s..", int(width-2), truncate(col, width-2))
			} else {
				fmt.Fprintf(&builder, " %*s", int(width), col)
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && escape != "" {
				builder.WriteString(ResetAnsiEscape().Build())
			}
			//
			builder.WriteString(" |")
		}
		//
		builder.WriteString("\n")
	}
	//
	_, err := io.WriteString(w, builder.String())
	//
	return err
}

// Width in runes, matching how fmt pads.
func cellWidth(val string) uint {
	return uint(utf8.RuneCountInString(val))
}

func truncate(val string, width uint) string {
	runes := []rune(val)
	//
	return string(runes[:width])
}
