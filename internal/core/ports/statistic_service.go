package ports

import (
	"context"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

type StatisticService interface {
	// Diagram returns the users-per-department grouping.
	Diagram(ctx context.Context) ([]*domain.DiagramRow, error)
	// Counts returns header totals. When projectID is non-empty the user
	// count is scoped to that project's members.
	Counts(ctx context.Context, projectID string) (*domain.HeaderCounts, error)
}
