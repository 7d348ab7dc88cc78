package service

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

// StatisticService computes the dashboard aggregates.
type StatisticService struct {
	users       ports.UserRepository
	departments ports.DepartmentRepository
	projects    ports.ProjectRepository
}

func NewStatisticService(users ports.UserRepository, departments ports.DepartmentRepository, projects ports.ProjectRepository) *StatisticService {
	return &StatisticService{users: users, departments: departments, projects: projects}
}

// Diagram returns one row per department with the number of assigned users.
// Departments without users still appear with a zero count.
func (s *StatisticService) Diagram(ctx context.Context) ([]*domain.DiagramRow, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.users.CountByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*domain.DiagramRow, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, &domain.DiagramRow{
			DepartmentID:   d.ID,
			DepartmentName: d.Name,
			Users:          counts[d.ID],
		})
	}
	return rows, nil
}

func (s *StatisticService) Counts(ctx context.Context, projectID string) (*domain.HeaderCounts, error) {
	var users int64
	var err error
	if projectID != "" {
		users, err = s.projects.CountMembers(ctx, projectID)
	} else {
		users, err = s.users.Count(ctx)
	}
	if err != nil {
		return nil, err
	}

	departments, err := s.departments.Count(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.HeaderCounts{
		Users:       users,
		Departments: departments,
		Projects:    projects,
	}, nil
}
