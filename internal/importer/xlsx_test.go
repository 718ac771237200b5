package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, sheets map[string][][]any, order ...string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			addr, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(name, addr, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestXLSXParser_SheetPerProject(t *testing.T) {
	buf := workbook(t, map[string][][]any{
		"Tower A": {
			{"ID", "Parent_ID", "Code", "Name"},
			{"1", "", "A", "Root"},
			{"2", "1", "A.1", "Sub"},
			{"", "", "", ""},
			{"3", "2", "A.1.1"},
		},
		"Tower B": {
			{"wbs_id", "wbs_short_name", "wbs_name", "parent_wbs_id"},
			{"10", "B", "Other"},
		},
	}, "Tower A", "Tower B")

	src, err := XLSXParser{}.Parse(buf)
	require.NoError(t, err)
	require.Len(t, src.Projects, 2)

	a := src.Projects[0]
	assert.Equal(t, "Tower A", a.ShortName)
	require.Len(t, a.WBS, 3)
	assert.Nil(t, a.WBS[0].ParentID)
	assert.Equal(t, "1", a.WBS[1].ParentKey())
	assert.Equal(t, WBSEntry{ID: "3", ParentID: strPtr("2"), Code: "A.1.1"}, a.WBS[2])

	b := src.Projects[1]
	require.Len(t, b.WBS, 1)
	assert.Equal(t, WBSEntry{ID: "10", Code: "B", Name: "Other"}, b.WBS[0])
}

func TestXLSXParser_MissingCodeColumn(t *testing.T) {
	buf := workbook(t, map[string][][]any{
		"Tower A": {{"id", "name"}, {"1", "Root"}},
	}, "Tower A")

	_, err := XLSXParser{}.Parse(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "code" column`)
}

func TestXLSXParser_NotAWorkbook(t *testing.T) {
	_, err := XLSXParser{}.Parse(bytes.NewBufferString("plain text"))
	require.Error(t, err)
}
