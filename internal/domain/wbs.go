package domain

import "time"

// WBS is one node of a schedule's work breakdown structure.
// Code is unique within a schedule. ParentID is set at creation and never changes.
type WBS struct {
	ID         int64
	PublicID   string
	Code       string
	Name       string
	ScheduleID int64
	ParentID   *int64
	CreatedAt  time.Time
	IsActive   bool
}

// IsRoot reports whether the node has no parent.
func (w *WBS) IsRoot() bool {
	return w.ParentID == nil
}
