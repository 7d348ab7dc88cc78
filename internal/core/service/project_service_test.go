package service

import (
	"context"
	"testing"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

func TestProjectService_Create(t *testing.T) {
	users := newStubUserRepo()
	member := seedUser(t, users, "alice@example.com", "")

	repo := &stubProjectRepo{}
	svc := NewProjectService(repo, users)

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:        "Launch",
		Description: "Q4 release",
		MemberIDs:   []string{member.ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if project.ID == "" || project.Name != "Launch" {
		t.Fatalf("unexpected project: %+v", project)
	}
	if len(project.MemberIDs) != 1 || project.MemberIDs[0] != member.ID {
		t.Fatalf("members not stored: %+v", project.MemberIDs)
	}
}

func TestProjectService_Create_UnknownMember(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, newStubUserRepo())

	_, err := svc.Create(context.Background(), ports.CreateProjectInput{
		Name:      "Launch",
		MemberIDs: []string{"ghost"},
	})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProjectService_AssignMembers(t *testing.T) {
	users := newStubUserRepo()
	first := seedUser(t, users, "alice@example.com", "")
	second := seedUser(t, users, "bob@example.com", "")

	repo := &stubProjectRepo{projects: []*domain.Project{{ID: "proj-1", Name: "Launch", MemberIDs: []string{first.ID}}}}
	svc := NewProjectService(repo, users)

	// Assigning an already present member must not duplicate it.
	project, err := svc.AssignMembers(context.Background(), "proj-1", []string{first.ID, second.ID})
	if err != nil {
		t.Fatalf("AssignMembers failed: %v", err)
	}
	if len(project.MemberIDs) != 2 {
		t.Fatalf("expected 2 distinct members, got %v", project.MemberIDs)
	}

	if _, err := svc.AssignMembers(context.Background(), "proj-1", []string{"ghost"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.AssignMembers(context.Background(), "missing", []string{first.ID}); err != domain.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDepartmentService_CreateRenameDelete(t *testing.T) {
	repo := &stubDepartmentRepo{}
	svc := NewDepartmentService(repo)

	created, err := svc.Create(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" || created.Name != "Engineering" {
		t.Fatalf("unexpected department: %+v", created)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", created)
	}

	renamed, err := svc.Rename(context.Background(), created.ID, "Platform")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "Platform" {
		t.Fatalf("rename not applied: %+v", renamed)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrDepartmentNotFound {
		t.Fatalf("double delete must report ErrDepartmentNotFound, got %v", err)
	}
}
