package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"spotplan/internal/core/distribution"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	cellStyle    = lipgloss.NewStyle().Align(lipgloss.Right)
	invalidStyle = cellStyle.Faint(true)
	totalStyle   = cellStyle.Bold(true)
)

var monthNames = [...]string{"", "Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"}

// renderMonth draws one month as a table: a row per product, a column per
// day and a final column with the product totals. Days outside the campaign
// are dimmed.
func renderMonth(frame distribution.MonthFrame) string {
	headers := []string{"Produto"}
	for _, day := range frame.Days {
		headers = append(headers, strconv.Itoa(day.Day)+"\n"+day.Weekday)
	}
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(frame.Products)+1)
	dayTotals := []string{"Total"}
	var grand int
	for _, p := range frame.Products {
		row := []string{p.Label()}
		for _, day := range frame.Days {
			row = append(row, cell(day.Products[p], day.Valid))
		}
		row = append(row, strconv.Itoa(frame.Totals[p]))
		rows = append(rows, row)
		grand += frame.Totals[p]
	}
	for _, day := range frame.Days {
		dayTotals = append(dayTotals, cell(day.Total, day.Valid))
	}
	rows = append(rows, append(dayTotals, strconv.Itoa(grand)))

	// Data row indexes start right after the header row.
	lastRow, lastCol := table.HeaderRow+len(rows), len(headers)-1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle()
			case row == lastRow || col == lastCol:
				return totalStyle
			case !frame.Days[col-1].Valid:
				return invalidStyle
			}
			return cellStyle
		})

	title := titleStyle.Render(monthNames[frame.Month] + " " + strconv.Itoa(frame.Year))
	return title + "\n" + t.String()
}

func cell(n int, valid bool) string {
	switch {
	case !valid:
		return "·"
	case n == 0:
		return ""
	}
	return strconv.Itoa(n)
}

func joinNames(names []string) string {
	return strings.Join(names, " ")
}
