// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package compare

import (
	"fmt"
	"strings"
)

// formatMS renders seconds as milliseconds with one decimal.
func formatMS(seconds float64) string {
	return fmt.Sprintf("%.1f ms", seconds*1000)
}

// Text renders one block per benchmark: a header line with the name, a
// median/spread line, and the significance verdict, with blank lines
// separating blocks.
func Text(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "\n### %s ###\n", r.Name)
		fmt.Fprintf(&b, "Median +- Std dev: %s +- %s -> %s +- %s: %s\n",
			formatMS(r.BaseMedian), formatMS(r.BaseStdDev),
			formatMS(r.ChangedMedian), formatMS(r.ChangedStdDev),
			r.Delta())
		b.WriteString(r.Significance())
		b.WriteString("\n")
	}
	if len(records) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// CSV renders a machine-readable document: a header row and one row
// per benchmark with the raw mean centers at six-decimal precision,
// not the formatted millisecond strings.
func CSV(records []Record) string {
	var b strings.Builder
	b.WriteString("Benchmark,Base,Changed\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%s,%f,%f\n", r.Name, r.BaseMean, r.ChangedMean)
	}
	return b.String()
}

// Table renders a bordered grid with columns Benchmark, the two suite
// labels, Change, and Significance. Column widths size to content; the
// row under the header uses '=' in the texttable convention.
func Table(records []Record, baseLabel, changedLabel string) string {
	headers := []string{"Benchmark", baseLabel, changedLabel, "Change", "Significance"}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%.2f", r.BaseMedian),
			fmt.Sprintf("%.2f", r.ChangedMedian),
			r.Delta(),
			r.Significance(),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeBorder(&b, widths, '-')
	writeRow(&b, headers, widths)
	writeBorder(&b, widths, '=')
	for _, row := range rows {
		writeRow(&b, row, widths)
	}
	writeBorder(&b, widths, '-')
	return b.String()
}

// writeBorder writes a "+---+---+" line with the given fill rune.
func writeBorder(b *strings.Builder, widths []int, fill rune) {
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat(string(fill), w+2))
	}
	b.WriteString("+\n")
}

// writeRow writes "| a | b |" with cells left-justified to width.
func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		b.WriteString("| ")
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		b.WriteByte(' ')
	}
	b.WriteString("|\n")
}
