package importer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// XLSXParser reads workbooks where every sheet is one project, named by the
// sheet, and the first row is a header naming the WBS columns.
type XLSXParser struct{}

func (XLSXParser) Format() string { return "xlsx" }

// Header spellings accepted for each column. The wbs_* forms match the
// PROJWBS field names used by XER exports.
var xlsxColumns = map[string][]string{
	"id":        {"id", "wbs_id"},
	"parent_id": {"parent_id", "parent_wbs_id", "parent"},
	"code":      {"code", "wbs_short_name"},
	"name":      {"name", "wbs_name"},
}

func (XLSXParser) Parse(r io.Reader) (*Source, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	src := &Source{}
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "reading sheet %q", sheet)
		}
		if len(rows) == 0 {
			continue
		}

		cols := headerColumns(rows[0])
		for _, required := range []string{"id", "code"} {
			if _, ok := cols[required]; !ok {
				return nil, errors.Errorf("sheet %q: missing %q column", sheet, required)
			}
		}

		project := Project{ShortName: strings.TrimSpace(sheet)}
		for _, row := range rows[1:] {
			if blankRow(row) {
				continue
			}
			entry := WBSEntry{
				ID:   cell(row, cols, "id"),
				Code: cell(row, cols, "code"),
				Name: cell(row, cols, "name"),
			}
			if parent := cell(row, cols, "parent_id"); parent != "" {
				entry.ParentID = &parent
			}
			project.WBS = append(project.WBS, entry)
		}
		src.Projects = append(src.Projects, project)
	}
	return src, nil
}

func headerColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for col, aliases := range xlsxColumns {
			for _, alias := range aliases {
				if h == alias {
					if _, seen := cols[col]; !seen {
						cols[col] = i
					}
				}
			}
		}
	}
	return cols
}

// cell returns the trimmed value of col in row. Trailing empty cells are
// omitted by GetRows, so short rows are expected.
func cell(row []string, cols map[string]int, col string) string {
	i, ok := cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
