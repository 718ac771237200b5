package service

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/domain"
)

// DuplicateNodeConflict marks a source entry whose code already exists in the
// target schedule. The entry is skipped and reported in ProjectResult.Conflicts.
const DuplicateNodeConflict = domain.OutcomeDuplicate

// ErrUnreadableSource is returned when an uploaded file cannot be parsed.
var ErrUnreadableSource = errors.New("unreadable schedule source")

// MalformedInputError reports a project that failed validation. Nothing is
// persisted for that project.
type MalformedInputError struct {
	Project  string
	Problems []string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed project %q: %s", e.Project, strings.Join(e.Problems, "; "))
}

// PersistenceError reports a store failure for one schedule or WBS node.
type PersistenceError struct {
	Op   string
	Code string
	Err  error
}

func (e *PersistenceError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Code, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
