package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/service"
)

// FormatImportResult renders one block per imported project: counts, then
// conflicts and errors when there are any.
func FormatImportResult(projects []service.ProjectResult) string {
	if len(projects) == 0 {
		return Dim("No projects found in source.") + "\n"
	}

	var b strings.Builder
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(p.Project))
		b.WriteString("\n")

		schedule := Dim("none")
		if p.ScheduleID != "" {
			schedule = p.ScheduleID
			if !p.ScheduleCreated {
				schedule += Dim(" (existing)")
			}
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Schedule:"), schedule)
		fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
			Dim("created"), OutcomeStyle(domain.OutcomeCreated).Render(fmt.Sprint(p.NodesCreated)),
			Dim("skipped"), OutcomeStyle(domain.OutcomeDuplicate).Render(fmt.Sprint(p.NodesSkipped)),
			Dim("errors"), OutcomeStyle(domain.OutcomeFailed).Render(fmt.Sprint(len(p.Errors))),
		)
		if len(p.Conflicts) > 0 {
			fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("duplicate codes:"), strings.Join(p.Conflicts, ", "))
		}
		for _, e := range p.Errors {
			label := "project"
			if e.Code != "" {
				label = e.Code
			}
			fmt.Fprintf(&b, "  %s %s\n", StyleRed.Render("✖ "+label), e.Reason)
		}
	}
	return b.String()
}
