package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

type stubLeaveRepo struct {
	leaves []domain.Leave
	nextID int64
}

func (r *stubLeaveRepo) ListAll(_ context.Context) ([]domain.Leave, error) {
	return append([]domain.Leave(nil), r.leaves...), nil
}

func (r *stubLeaveRepo) ListByEmployee(_ context.Context, employeeID int64) ([]domain.Leave, error) {
	var out []domain.Leave
	for _, l := range r.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) Create(_ context.Context, l *domain.Leave) (*domain.Leave, error) {
	r.nextID++
	clone := *l
	clone.ID = r.nextID
	r.leaves = append(r.leaves, clone)
	return &clone, nil
}

func (r *stubLeaveRepo) UpdateStatus(_ context.Context, id int64, status, adminNote string) (*domain.Leave, error) {
	for i := range r.leaves {
		if r.leaves[i].ID == id {
			r.leaves[i].Status = status
			r.leaves[i].AdminNote = adminNote
			clone := r.leaves[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrLeaveNotFound
}

func (r *stubLeaveRepo) Delete(_ context.Context, id int64) error {
	for i := range r.leaves {
		if r.leaves[i].ID == id {
			r.leaves = append(r.leaves[:i], r.leaves[i+1:]...)
			return nil
		}
	}
	return domain.ErrLeaveNotFound
}

func leaveFixture() (*LeaveService, *stubLeaveRepo) {
	repo := &stubLeaveRepo{
		leaves: []domain.Leave{
			{ID: 1, EmployeeID: 7, Type: domain.LeaveSick, Status: domain.LeavePending},
			{ID: 2, EmployeeID: 8, Type: domain.LeaveVacation, Status: domain.LeaveApproved},
		},
		nextID: 2,
	}
	employees := newStubEmployeeRepo()
	employees.byID[7] = &domain.Employee{ID: 7, Name: "Alice Doe"}
	employees.byID[8] = &domain.Employee{ID: 8, Name: "Bob Roe"}
	return NewLeaveService(repo, employees, zerolog.Nop()), repo
}

func TestLeaveService_ListFor_Admin(t *testing.T) {
	svc, _ := leaveFixture()

	leaves, err := svc.ListFor(context.Background(), domain.Claims{UserID: 1, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("ListFor returned error: %v", err)
	}
	if len(leaves) != 2 {
		t.Fatalf("admin should see all leaves, got %d", len(leaves))
	}
}

func TestLeaveService_ListFor_EmployeeScoped(t *testing.T) {
	svc, _ := leaveFixture()

	leaves, err := svc.ListFor(context.Background(), domain.Claims{UserID: 2, Role: domain.RoleEmployee, EmployeeID: int64Ptr(7)})
	if err != nil {
		t.Fatalf("ListFor returned error: %v", err)
	}
	if len(leaves) != 1 || leaves[0].EmployeeID != 7 {
		t.Fatalf("employee should only see own leaves, got %+v", leaves)
	}
}

func TestLeaveService_ListFor_NoLinkedEmployee(t *testing.T) {
	svc, _ := leaveFixture()

	if _, err := svc.ListFor(context.Background(), domain.Claims{UserID: 3, Role: domain.RoleEmployee}); err != domain.ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestLeaveService_Create(t *testing.T) {
	svc, _ := leaveFixture()

	created, err := svc.Create(context.Background(), ports.LeaveInput{
		EmployeeID: 7,
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
		Type:       domain.LeavePersonal,
		Reason:     "family matters",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.LeavePending {
		t.Fatalf("new leave must start pending, got %s", created.Status)
	}
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	svc, _ := leaveFixture()

	_, err := svc.Create(context.Background(), ports.LeaveInput{EmployeeID: 99, Type: domain.LeaveSick})
	if err != domain.ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestLeaveService_UpdateStatus(t *testing.T) {
	svc, repo := leaveFixture()

	updated, err := svc.UpdateStatus(context.Background(), 1, ports.LeaveStatusInput{Status: domain.LeaveApproved, AdminNote: "enjoy"})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.LeaveApproved || updated.AdminNote != "enjoy" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if repo.leaves[0].Status != domain.LeaveApproved {
		t.Fatalf("status not persisted")
	}
}

func TestLeaveService_UpdateStatus_NotFound(t *testing.T) {
	svc, _ := leaveFixture()

	if _, err := svc.UpdateStatus(context.Background(), 99, ports.LeaveStatusInput{Status: domain.LeaveRejected}); err != domain.ErrLeaveNotFound {
		t.Fatalf("expected ErrLeaveNotFound, got %v", err)
	}
}
