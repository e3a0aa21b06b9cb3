package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Align selects the alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Style selects the table border style.
type Style int

const (
	// StyleTerminal uses rounded box drawing characters.
	StyleTerminal Style = iota
	// StyleText uses plain ASCII for report files.
	StyleText
)

// RenderTable renders rows under headers. Short rows are padded.
func RenderTable(style Style, headers []string, rows [][]string, aligns []Align) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	switch style {
	case StyleText:
		tw.SetStyle(table.StyleDefault)
	default:
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
