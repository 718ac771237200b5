package api

import (
	"time"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/service"
)

type nodeErrorDTO struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

type projectResultDTO struct {
	Project          string         `json:"project"`
	SchedulePublicID string         `json:"schedule_public_id"`
	ScheduleCreated  bool           `json:"schedule_created"`
	NodesCreated     int            `json:"nodes_created"`
	NodesSkipped     int            `json:"nodes_skipped"`
	Conflicts        []string       `json:"conflicts"`
	Errors           []nodeErrorDTO `json:"errors"`
}

type uploadResponse struct {
	PublicID string             `json:"public_id"`
	Projects []projectResultDTO `json:"projects"`
}

type scheduleDTO struct {
	PublicID  string    `json:"public_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type wbsNodeDTO struct {
	PublicID string        `json:"public_id"`
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Children []*wbsNodeDTO `json:"children"`
}

type wbsTreeResponse struct {
	Schedule scheduleDTO   `json:"schedule"`
	WBS      []*wbsNodeDTO `json:"wbs"`
}

func toProjectResultDTO(r service.ProjectResult) projectResultDTO {
	dto := projectResultDTO{
		Project:          r.Project,
		SchedulePublicID: r.ScheduleID,
		ScheduleCreated:  r.ScheduleCreated,
		NodesCreated:     r.NodesCreated,
		NodesSkipped:     r.NodesSkipped,
		Conflicts:        r.Conflicts,
		Errors:           make([]nodeErrorDTO, 0, len(r.Errors)),
	}
	if dto.Conflicts == nil {
		dto.Conflicts = []string{}
	}
	for _, e := range r.Errors {
		dto.Errors = append(dto.Errors, nodeErrorDTO{Code: e.Code, Reason: e.Reason})
	}
	return dto
}

func toScheduleDTO(s *domain.Schedule) scheduleDTO {
	return scheduleDTO{
		PublicID:  s.PublicID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		IsActive:  s.IsActive,
	}
}

func toWBSNodeDTOs(nodes []*service.WBSTreeNode) []*wbsNodeDTO {
	out := make([]*wbsNodeDTO, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &wbsNodeDTO{
			PublicID: n.Node.PublicID,
			Code:     n.Node.Code,
			Name:     n.Node.Name,
			Children: toWBSNodeDTOs(n.Children),
		})
	}
	return out
}
