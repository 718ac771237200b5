package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wbsimport/internal/domain"
)

// FormatScheduleList renders schedules as a table.
func FormatScheduleList(schedules []*domain.Schedule) string {
	if len(schedules) == 0 {
		return Dim("No schedules found.") + "\n"
	}
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{
			s.PublicID,
			Bold(s.Title),
			ActivePill(s.IsActive),
			HumanTimestamp(s.CreatedAt),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "STATUS", "CREATED"}, rows)
}

// FormatSchedule renders one schedule's details in a box.
func FormatSchedule(s *domain.Schedule, nodeCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID     "), s.PublicID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Status "), ActivePill(s.IsActive))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Created"), s.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "%s  %d", Dim("Nodes  "), nodeCount)
	return RenderBox(s.Title, b.String())
}
