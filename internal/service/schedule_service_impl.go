package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/repository"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	nodes     repository.WBSRepo
}

func NewScheduleService(schedules repository.ScheduleRepo, nodes repository.WBSRepo) ScheduleService {
	return &scheduleService{schedules: schedules, nodes: nodes}
}

func (s *scheduleService) GetByPublicID(ctx context.Context, publicID string) (*domain.Schedule, error) {
	return s.schedules.GetByPublicID(ctx, publicID)
}

func (s *scheduleService) List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error) {
	return s.schedules.List(ctx, includeInactive)
}

// Tree returns the schedule and its WBS nodes nested under their parents.
// A node whose parent belongs to another schedule is returned as a root.
func (s *scheduleService) Tree(ctx context.Context, schedulePublicID string) (*domain.Schedule, []*WBSTreeNode, error) {
	sch, err := s.schedules.GetByPublicID(ctx, schedulePublicID)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := s.nodes.ListBySchedule(ctx, sch.ID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "listing wbs nodes")
	}
	return sch, buildTree(nodes), nil
}

// buildTree nests nodes by ParentID, preserving the input order among
// siblings.
func buildTree(nodes []*domain.WBS) []*WBSTreeNode {
	byID := make(map[int64]*WBSTreeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = &WBSTreeNode{Node: n}
	}

	var roots []*WBSTreeNode
	for _, n := range nodes {
		tn := byID[n.ID]
		if !n.IsRoot() {
			if parent, ok := byID[*n.ParentID]; ok && parent != tn {
				parent.Children = append(parent.Children, tn)
				continue
			}
		}
		roots = append(roots, tn)
	}
	return roots
}
