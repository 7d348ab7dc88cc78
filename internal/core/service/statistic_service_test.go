package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

type stubDepartmentRepo struct {
	departments []*domain.Department
	nextID      int
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]*domain.Department, error) {
	out := make([]*domain.Department, len(r.departments))
	copy(out, r.departments)
	return out, nil
}

func (r *stubDepartmentRepo) FindByID(_ context.Context, id string) (*domain.Department, error) {
	for _, d := range r.departments {
		if d.ID == id {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *stubDepartmentRepo) Create(_ context.Context, department *domain.Department) (*domain.Department, error) {
	clone := *department
	if clone.ID == "" {
		r.nextID++
		clone.ID = "dep-" + strconv.Itoa(r.nextID)
	}
	r.departments = append(r.departments, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubDepartmentRepo) Rename(_ context.Context, id, name string) (*domain.Department, error) {
	for _, d := range r.departments {
		if d.ID == id {
			d.Name = name
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDepartmentNotFound
}

func (r *stubDepartmentRepo) Delete(_ context.Context, id string) error {
	for i, d := range r.departments {
		if d.ID == id {
			r.departments = append(r.departments[:i], r.departments[i+1:]...)
			return nil
		}
	}
	return domain.ErrDepartmentNotFound
}

func (r *stubDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.departments)), nil
}

type stubProjectRepo struct {
	projects []*domain.Project
	nextID   int
}

func (r *stubProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	out := make([]*domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	clone := *project
	if clone.ID == "" {
		r.nextID++
		clone.ID = "proj-" + strconv.Itoa(r.nextID)
	}
	r.projects = append(r.projects, &clone)
	copy := clone
	return &copy, nil
}

func (r *stubProjectRepo) AssignMembers(_ context.Context, id string, userIDs []string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID != id {
			continue
		}
		existing := make(map[string]struct{}, len(p.MemberIDs))
		for _, m := range p.MemberIDs {
			existing[m] = struct{}{}
		}
		for _, u := range userIDs {
			if _, ok := existing[u]; !ok {
				p.MemberIDs = append(p.MemberIDs, u)
			}
		}
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

func (r *stubProjectRepo) CountMembers(_ context.Context, id string) (int64, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return int64(len(p.MemberIDs)), nil
		}
	}
	return 0, domain.ErrProjectNotFound
}

func TestStatisticService_Diagram(t *testing.T) {
	users := newStubUserRepo()
	departments := &stubDepartmentRepo{departments: []*domain.Department{
		{ID: "dep-1", Name: "Engineering"},
		{ID: "dep-2", Name: "Sales"},
		{ID: "dep-3", Name: "Empty"},
	}}

	seedUser(t, users, "a@example.com", "dep-1")
	seedUser(t, users, "b@example.com", "dep-1")
	seedUser(t, users, "c@example.com", "dep-2")

	svc := NewStatisticService(users, departments, &stubProjectRepo{})
	rows, err := svc.Diagram(context.Background())
	if err != nil {
		t.Fatalf("Diagram failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected one row per department, got %d", len(rows))
	}

	byID := make(map[string]*domain.DiagramRow, len(rows))
	for _, row := range rows {
		byID[row.DepartmentID] = row
	}
	if byID["dep-1"].Users != 2 || byID["dep-1"].DepartmentName != "Engineering" {
		t.Fatalf("unexpected dep-1 row: %+v", byID["dep-1"])
	}
	if byID["dep-2"].Users != 1 {
		t.Fatalf("unexpected dep-2 row: %+v", byID["dep-2"])
	}
	if byID["dep-3"].Users != 0 {
		t.Fatalf("departments without users must appear with a zero count, got %+v", byID["dep-3"])
	}
}

func TestStatisticService_Counts(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "a@example.com", "dep-1")
	seedUser(t, users, "b@example.com", "dep-1")

	departments := &stubDepartmentRepo{departments: []*domain.Department{{ID: "dep-1", Name: "Engineering"}}}
	projects := &stubProjectRepo{projects: []*domain.Project{
		{ID: "proj-1", Name: "Launch", MemberIDs: []string{"u-1", "u-2", "u-3"}},
		{ID: "proj-2", Name: "Maintenance"},
	}}

	svc := NewStatisticService(users, departments, projects)

	counts, err := svc.Counts(context.Background(), "")
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts.Users != 2 || counts.Departments != 1 || counts.Projects != 2 {
		t.Fatalf("unexpected totals: %+v", counts)
	}

	// With a project filter the user total is the project's member count.
	counts, err = svc.Counts(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("Counts with project failed: %v", err)
	}
	if counts.Users != 3 {
		t.Fatalf("expected member count 3, got %d", counts.Users)
	}

	if _, err := svc.Counts(context.Background(), "missing"); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
