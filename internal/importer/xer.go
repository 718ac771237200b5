package importer

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// XER record markers. A file is a sequence of tables, each introduced by %T,
// followed by one %F field list and any number of %R rows.
const (
	xerTable  = "%T"
	xerFields = "%F"
	xerRow    = "%R"
	xerEnd    = "%E"
)

const maxXERLine = 16 << 20

// XERParser reads Primavera P6 XER exports. Only the PROJECT and PROJWBS
// tables are used.
type XERParser struct{}

func (XERParser) Format() string { return "xer" }

func (XERParser) Parse(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading xer")
	}
	// P6 writes exports in the Windows code page unless told otherwise.
	if !utf8.Valid(data) {
		if data, err = charmap.Windows1252.NewDecoder().Bytes(data); err != nil {
			return nil, errors.Wrap(err, "decoding xer")
		}
	}

	tables, err := readXERTables(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	projects, ok := tables["PROJECT"]
	if !ok {
		return nil, errors.New("xer: missing PROJECT table")
	}

	src := &Source{}
	index := make(map[string]int) // proj_id -> position in src.Projects
	for _, row := range projects.rows {
		index[projects.value(row, "proj_id")] = len(src.Projects)
		src.Projects = append(src.Projects, Project{
			ShortName: projects.value(row, "proj_short_name"),
		})
	}

	wbs, ok := tables["PROJWBS"]
	if !ok {
		return src, nil
	}
	for _, row := range wbs.rows {
		pos, ok := index[wbs.value(row, "proj_id")]
		if !ok {
			continue
		}
		entry := WBSEntry{
			ID:   wbs.value(row, "wbs_id"),
			Code: wbs.value(row, "wbs_short_name"),
			Name: wbs.value(row, "wbs_name"),
		}
		if parent := wbs.value(row, "parent_wbs_id"); parent != "" {
			entry.ParentID = &parent
		}
		src.Projects[pos].WBS = append(src.Projects[pos].WBS, entry)
	}
	return src, nil
}

type xerTableData struct {
	fields map[string]int
	rows   [][]string
}

func (t *xerTableData) value(row []string, field string) string {
	i, ok := t.fields[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func readXERTables(r io.Reader) (map[string]*xerTableData, error) {
	tables := make(map[string]*xerTableData)
	var current *xerTableData

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxXERLine)
	line := 0
	for sc.Scan() {
		line++
		parts := strings.Split(strings.TrimRight(sc.Text(), "\r"), "\t")
		switch parts[0] {
		case xerTable:
			if len(parts) < 2 {
				return nil, errors.Errorf("xer line %d: table marker without a name", line)
			}
			current = &xerTableData{fields: map[string]int{}}
			tables[strings.TrimSpace(parts[1])] = current
		case xerFields:
			if current == nil {
				return nil, errors.Errorf("xer line %d: field list outside a table", line)
			}
			for i, name := range parts[1:] {
				current.fields[strings.TrimSpace(name)] = i
			}
		case xerRow:
			if current == nil {
				return nil, errors.Errorf("xer line %d: row outside a table", line)
			}
			current.rows = append(current.rows, parts[1:])
		case xerEnd:
			return tables, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning xer")
	}
	return tables, nil
}
