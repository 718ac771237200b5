package importer

// Source is the in-memory model a schedule file parses into: every project
// found in the file together with its WBS entries in file order.
type Source struct {
	Projects []Project `json:"projects"`
}

// Project is one project of a schedule file.
type Project struct {
	ShortName string     `json:"short_name" validate:"required"`
	WBS       []WBSEntry `json:"wbs" validate:"dive"`
}

// WBSEntry is one WBS row as it appears in the file. ID and ParentID are only
// meaningful inside the file; a nil or empty ParentID marks a root. A parent is
// expected to appear at or before its children.
type WBSEntry struct {
	ID       string  `json:"id" validate:"required"`
	ParentID *string `json:"parent_id,omitempty"`
	Code     string  `json:"code" validate:"required"`
	Name     string  `json:"name"`
}

// ParentKey returns the parent reference, or "" for a root entry.
func (e WBSEntry) ParentKey() string {
	if e.ParentID == nil {
		return ""
	}
	return *e.ParentID
}

// EntryCount returns the number of WBS entries across all projects.
func (s *Source) EntryCount() int {
	n := 0
	for _, p := range s.Projects {
		n += len(p.WBS)
	}
	return n
}
