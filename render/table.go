package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/coalitions/coalition"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	yesStyle    = cellStyle.Foreground(lipgloss.Color("10"))
	noStyle     = cellStyle.Foreground(lipgloss.Color("9"))
	shortStyle  = cellStyle.Faint(true)
)

// Table column headers.
var tableHeaders = []string{"#", "Members", "Seats", "Necessary", "Sufficient"}

const sufficientCol = 4

// Rows returns the table body as plain strings, one row per record.
func Rows(tbl *coalition.Table) [][]string {
	rows := make([][]string, 0, tbl.Len())
	for i, r := range tbl.Top(0) {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.Join(r.Members, ", "),
			strconv.Itoa(r.Value),
			necessaryCell(r.Necessary),
			yesNo(r.NecessaryAreSufficient),
		})
	}
	return rows
}

// Table renders tbl for a terminal. Records below the majority are dimmed.
func Table(tbl *coalition.Table) string {
	rows := Rows(tbl)
	var records []coalition.Record
	if tbl != nil {
		records = tbl.Records
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(records):
				return cellStyle
			case !records[row].Reaches(tbl.Majority):
				return shortStyle
			case col == sufficientCol && records[row].NecessaryAreSufficient:
				return yesStyle
			case col == sufficientCol:
				return noStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}

func necessaryCell(necessary []string) string {
	if len(necessary) == 0 {
		return "-"
	}
	return strings.Join(necessary, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
