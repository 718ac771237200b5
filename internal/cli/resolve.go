package cli

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/repository"
)

// resolveScheduleID accepts a full public id or a unique prefix of one.
func resolveScheduleID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", errors.New("schedule ID is required")
	}

	sch, err := app.Schedules.GetByPublicID(ctx, input)
	if err == nil {
		return sch.PublicID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	schedules, err := app.Schedules.List(ctx, true)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range schedules {
		if strings.HasPrefix(s.PublicID, input) {
			matches = append(matches, s.PublicID)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.Errorf("schedule not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", errors.Errorf("schedule ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
