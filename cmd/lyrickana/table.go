package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"lyrickana/convert"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderReports(w io.Writer, reports []convert.LineReport) error {
	headers := []string{"Line", "Input", "Spans", "Units", "Output"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		spans := make([]string, len(r.Spans))
		for i, s := range r.Spans {
			spans[i] = s.Class.String() + ":" + s.Text
		}
		units := make([]string, len(r.Units))
		for i, u := range r.Units {
			units[i] = u.Text
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Number),
			r.Input,
			strings.Join(spans, ", "),
			strings.Join(units, "|"),
			r.Output,
		})
	}
	out := renderTable(headers, rows, []columnAlignment{alignRight}, shouldColorize(w))
	_, err := io.WriteString(w, out+"\n")
	return err
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, colorize bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if colorize {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgBlue}
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
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

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(file)
}
