// Package trace turns the output of a dijkstra.Engine into human readable
// artifacts: the step-by-step history table, the path summary lines and a
// JSON-friendly Report.
package trace

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// HeaderVisited is the title of the first column of the history table.
const HeaderVisited = "V"

// Style controls terminal rendering of the history table.
type Style struct {
	Color bool // use colours for the header and the finalized cell
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	finalizedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// FormatDistance prints a distance without trailing zeros; +Inf is "inf".
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

// FormatCell renders one frontier entry as "dist_Predecessor", or just
// "dist" when the entry has no predecessor.
func FormatCell(nodes []string, e dijkstra.Entry) string {
	if !e.HasPredecessor() {
		return FormatDistance(e.Distance)
	}

	return FormatDistance(e.Distance) + "_" + nodes[e.Predecessor]
}

// Headers returns the table header: "V" followed by every node name.
func Headers(nodes []string) []string {
	return append([]string{HeaderVisited}, nodes...)
}

// HistoryTable converts history records into string rows: the finalized
// node name followed by one formatted cell per node.
func HistoryTable(nodes []string, history []dijkstra.HistoryRecord) [][]string {
	rows := make([][]string, 0, len(history))
	var (
		rec dijkstra.HistoryRecord
		row []string
	)
	for _, rec = range history {
		row = make([]string, 0, len(nodes)+1)
		row = append(row, nodes[rec.Node])
		for _, entry := range rec.Table {
			row = append(row, FormatCell(nodes, entry))
		}
		rows = append(rows, row)
	}

	return rows
}

// RenderTable draws the history as a bordered grid.
func RenderTable(nodes []string, history []dijkstra.HistoryRecord, style Style) string {
	rows := HistoryTable(nodes, history)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(Headers(nodes)...).
		Rows(rows...)

	if !style.Color {
		t = t.StyleFunc(func(row, col int) lipgloss.Style { return cellStyle })
		return t.Render()
	}

	t = t.BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(history) && col == history[row].Node+1:
				return finalizedStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

// PathLines returns the two summary lines printed under the table:
//
//	4 + 5 + 10 + 5 = 24
//	Monaire -> Poirott -> Milis -> Ranoa -> Asura
//
// The leading weight entry of the path is skipped in the sum line.
func PathLines(nodes []string, p dijkstra.Path) (sum string, route string) {
	parts := make([]string, 0, len(p.Weights))
	for i, w := range p.Weights {
		if i == 0 {
			continue
		}
		parts = append(parts, FormatDistance(w))
	}
	if len(parts) == 0 {
		parts = append(parts, "0")
	}
	sum = strings.Join(parts, " + ") + " = " + FormatDistance(p.Total())
	route = strings.Join(p.Names(nodes), " -> ")

	return sum, route
}

// NoPathLine is printed when the destination is unreachable.
func NoPathLine(source, dest string) string {
	return "There exists no path from " + source + " to " + dest
}
