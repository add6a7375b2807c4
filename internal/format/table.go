package format

import "fmt"

// TableRow holds the pre-formatted cells of one summary line.
type TableRow struct {
	Device        string
	Size          string
	Used          string
	Available     string
	UsePercent    string
	SavingPercent string
}

// tableFormat fixes the summary column widths: device left-aligned in
// 20, sizes right-aligned in 9, use% in 4, space saving% in 13.
const tableFormat = "%-20s %9s %9s %9s %4s %13s"

// RenderTable renders the fixed-width summary: a header line followed
// by one line per row. The size column header depends on whether sizes
// are raw 1K block counts or unit-scaled.
func RenderTable(rows []TableRow, humanReadable bool) []string {
	sizeHeader := "1K-blocks"
	if humanReadable {
		sizeHeader = "Size"
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, fmt.Sprintf(tableFormat,
		"Device", sizeHeader, "Used", "Available", "Use%", "Space saving%"))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf(tableFormat,
			r.Device, r.Size, r.Used, r.Available, r.UsePercent, r.SavingPercent))
	}
	return lines
}
