package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFile records an uploaded schedule file kept on disk.
type SourceFile struct {
	ID         int64
	PublicID   string
	Name       string
	Extension  string
	StoredPath string
	CreatedAt  time.Time
	IsActive   bool
}

// FileExtension returns the lower-cased extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
