package domain

import "time"

// Schedule is one project imported from a schedule file. Title comes from the
// project's short name; PublicID is the identifier exposed to callers.
type Schedule struct {
	ID        int64
	PublicID  string
	Title     string
	CreatedAt time.Time
	IsActive  bool
}
