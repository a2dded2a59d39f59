package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/delaneyj/observe/cmd/observebench/templates"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
)

type Format string

const (
	FormatPretty   Format = "pretty"
	FormatASCII    Format = "ascii"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPretty, FormatASCII, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q, want one of pretty, ascii, markdown", s)
	}
}

var header = []string{"benchmark", "avg", "min", "p75", "p99", "max", "notifications", "rate", "checksum"}

func row(r Result) []string {
	return []string{
		r.Scenario.Name,
		r.Metrics.Time.Avg.String(),
		r.Metrics.Time.Min.String(),
		r.Metrics.Time.P75.String(),
		r.Metrics.Time.P99.String(),
		r.Metrics.Time.Max.String(),
		humanize.Comma(r.Notifications),
		humanize.SIWithDigits(r.Metrics.Rate.Second, 2, "op/s"),
		fmt.Sprintf("%016x", r.Checksum),
	}
}

func Render(w io.Writer, title string, results []Result, format Format) {
	switch format {
	case FormatASCII:
		renderASCII(w, title, results)
	case FormatMarkdown:
		rows := make([]templates.ReportRow, len(results))
		for i, r := range results {
			rows[i] = templates.ReportRow{Kind: string(r.Scenario.Kind), Cells: row(r)}
		}
		templates.WriteReport(w, title, header, rows)
	default:
		renderPretty(w, title, results)
	}
}

func renderPretty(w io.Writer, title string, results []Result) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(w)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	tbl.AppendHeader(headerRow)

	for _, r := range results {
		cells := row(r)
		tr := make(table.Row, len(cells))
		for i, c := range cells {
			tr[i] = c
		}
		tbl.AppendRow(tr)
	}
	tbl.Render()
}

func renderASCII(w io.Writer, title string, results []Result) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetCaption(true, title)
	for _, r := range results {
		tbl.Append(row(r))
	}
	tbl.Render()
}
