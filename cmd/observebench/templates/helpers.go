package templates

import "strings"

// ReportRow is one benchmark line of the markdown report.
type ReportRow struct {
	Kind  string
	Cells []string
}

func separatorRow(count int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i := 0; i < count; i++ {
		sb.WriteString(" --- |")
	}
	return sb.String()
}

func groupByKind(rows []ReportRow) (kinds []string, byKind map[string][]ReportRow) {
	byKind = map[string][]ReportRow{}
	for _, r := range rows {
		if _, ok := byKind[r.Kind]; !ok {
			kinds = append(kinds, r.Kind)
		}
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}
	return kinds, byKind
}
