package repository

import (
	"testing"

	"github.com/anbessa/iam-backend/internal/domain"

	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	ut := &domain.UserType{Name: "Regular " + username}
	if err := db.Create(ut).Error; err != nil {
		t.Fatalf("seed user type: %v", err)
	}
	user := &domain.User{
		UserTypeID:   ut.ID,
		Name:         "Test " + username,
		Username:     username,
		PasswordHash: "x",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestPolicyAssignIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	role := &domain.Role{Name: "Auditor"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	repo := NewPolicyRepository(db)

	created, err := repo.Assign(user.ID, role.ID, 1)
	if err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if !created {
		t.Fatal("expected first assign to create a row")
	}

	created, err = repo.Assign(user.ID, role.ID, 1)
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if created {
		t.Fatal("expected second assign to be a no-op")
	}

	var count int64
	if err := db.Model(&domain.Policy{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one policy row, got %d", count)
	}
}

func TestPolicyRemoveThenReassign(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "bob")
	role := &domain.Role{Name: "Operator"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	repo := NewPolicyRepository(db)

	if _, err := repo.Assign(user.ID, role.ID, 1); err != nil {
		t.Fatalf("assign: %v", err)
	}
	removed, err := repo.Remove(user.ID, role.ID)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}
	removed, err = repo.Remove(user.ID, role.ID)
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if removed {
		t.Fatal("expected second remove to report false")
	}

	// The row is hard-deleted, so reassignment must not hit a tombstone.
	created, err := repo.Assign(user.ID, role.ID, 1)
	if err != nil {
		t.Fatalf("reassign: %v", err)
	}
	if !created {
		t.Fatal("expected reassign to create a fresh row")
	}
	exists, err := repo.Exists(user.ID, role.ID)
	if err != nil || !exists {
		t.Fatalf("expected pair to exist, got %v %v", exists, err)
	}
}

func TestRolePermissionAssignIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	role := &domain.Role{Name: "Reviewer"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	perm := &domain.Permission{Name: "Read User", Type: domain.PermissionRead, Resource: domain.ResourceUser}
	if err := db.Create(perm).Error; err != nil {
		t.Fatalf("seed permission: %v", err)
	}
	repo := NewRolePermissionRepository(db)

	created, err := repo.Assign(role.ID, perm.ID, 1)
	if err != nil || !created {
		t.Fatalf("first assign: %v %v", created, err)
	}
	created, err = repo.Assign(role.ID, perm.ID, 1)
	if err != nil {
		t.Fatalf("second assign: %v", err)
	}
	if created {
		t.Fatal("expected second assign to be a no-op")
	}

	var count int64
	if err := db.Model(&domain.RolePermission{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one join row, got %d", count)
	}
}
