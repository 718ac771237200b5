package domain

// NodeOutcome is what happened to a single source WBS entry during an import.
type NodeOutcome string

const (
	OutcomeCreated   NodeOutcome = "created"
	OutcomeDuplicate NodeOutcome = "duplicate"
	OutcomeFailed    NodeOutcome = "failed"
)

// SchedulePolicy decides how a project maps onto a schedule record.
type SchedulePolicy string

const (
	// PolicyAlwaysCreate mints a new schedule for every imported project,
	// even when one with the same title already exists.
	PolicyAlwaysCreate SchedulePolicy = "always_create"
	// PolicyFindOrCreateByTitle reuses an active schedule with the same title.
	PolicyFindOrCreateByTitle SchedulePolicy = "find_or_create_by_title"
)

// ValidSchedulePolicies is the canonical set of accepted policy strings.
var ValidSchedulePolicies = map[string]bool{
	string(PolicyAlwaysCreate):        true,
	string(PolicyFindOrCreateByTitle): true,
}
