package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/service"
)

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", HumanDateFrom(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.Add(-24*time.Hour), now))
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"older", now.Add(-72 * time.Hour), "Feb 4, 2026"},
		{"future", now.Add(48 * time.Hour), "Feb 9, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("1234567890"))
	assert.Equal(t, "abc", TruncID("abc"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"ID", "TITLE"}, [][]string{
		{"1", "Tower A"},
		{"22", "B"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "ID  TITLE", lines[0])
	assert.Equal(t, "──  ───────", lines[1])
	assert.Equal(t, "1   Tower A", lines[2])
	assert.Equal(t, "22  B", lines[3])

	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatScheduleList(t *testing.T) {
	assert.Contains(t, FormatScheduleList(nil), "No schedules found.")

	out := FormatScheduleList([]*domain.Schedule{
		{PublicID: "sched-1", Title: "Tower A", IsActive: true, CreatedAt: time.Now()},
		{PublicID: "sched-2", Title: "Tower B", CreatedAt: time.Now()},
	})
	assert.Contains(t, out, "sched-1")
	assert.Contains(t, out, "Tower B")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "Inactive")
}

func TestFormatSchedule(t *testing.T) {
	out := FormatSchedule(&domain.Schedule{PublicID: "sched-1", Title: "Tower A", IsActive: true}, 3)
	assert.Contains(t, out, "TOWER A")
	assert.Contains(t, out, "sched-1")
	assert.Contains(t, out, "3")
}

func TestFormatImportResult(t *testing.T) {
	out := FormatImportResult([]service.ProjectResult{
		{
			Project:         "Tower A",
			ScheduleID:      "sched-1",
			ScheduleCreated: true,
			NodesCreated:    3,
			NodesSkipped:    1,
			Conflicts:       []string{"A"},
			Errors:          []service.NodeError{{Code: "A.1.1", Reason: "create wbs \"A.1.1\": disk full"}},
		},
		{
			Project: "Bad",
			Errors:  []service.NodeError{{Reason: "malformed project \"Bad\": wbs[0].code is required"}},
		},
	})

	assert.Contains(t, out, "TOWER A")
	assert.Contains(t, out, "sched-1")
	assert.Contains(t, out, "duplicate codes: A")
	assert.Contains(t, out, "✖ A.1.1")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, "✖ project")
	assert.Contains(t, out, "Schedule: none")

	assert.Contains(t, FormatImportResult(nil), "No projects found")
}
