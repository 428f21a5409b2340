package repository

import (
	"testing"

	"github.com/anbessa/iam-backend/internal/domain"
)

func TestFilterContains(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserTypeRepository(db)
	for _, name := range []string{"Super Admin", "Regular", "Contractor"} {
		if err := repo.Create(&domain.UserType{Name: name}); err != nil {
			t.Fatalf("seed %q: %v", name, err)
		}
	}

	types, err := repo.Search(Contains("name", "Admin"), nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(types) != 1 || types[0].Name != "Super Admin" {
		t.Fatalf("unexpected result: %+v", types)
	}
}

func TestFilterOrAcrossColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	seed := []domain.Permission{
		{Name: "Read User", Type: domain.PermissionRead, Resource: domain.ResourceUser},
		{Name: "Update Role", Type: domain.PermissionUpdate, Resource: domain.ResourceRole},
		{Name: "Delete Permission", Type: domain.PermissionDelete, Resource: domain.ResourcePermission},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	perms, err := repo.Search(Or(
		Contains("name", "Role"),
		Contains("resource", "Role"),
	), []string{"name asc"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(perms) != 1 || perms[0].Name != "Update Role" {
		t.Fatalf("unexpected result: %+v", perms)
	}
}

func TestFilterAndNarrows(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	seed := []domain.Permission{
		{Name: "Read User", Type: domain.PermissionRead, Resource: domain.ResourceUser},
		{Name: "Update User", Type: domain.PermissionUpdate, Resource: domain.ResourceUser},
		{Name: "Update Role", Type: domain.PermissionUpdate, Resource: domain.ResourceRole},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	perms, err := repo.Search(And(
		Eq("type", domain.PermissionUpdate),
		Eq("resource", domain.ResourceUser),
	), nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(perms) != 1 || perms[0].Name != "Update User" {
		t.Fatalf("unexpected result: %+v", perms)
	}
}

func TestFilterAllMatchesEverything(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserTypeRepository(db)
	for _, name := range []string{"One", "Two"} {
		if err := repo.Create(&domain.UserType{Name: name}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	types, err := repo.Search(All(), nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected all rows, got %d", len(types))
	}
}

func TestSoftDeletedRowsAreExcluded(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)
	role := &domain.Role{Name: "Ephemeral"}
	if err := repo.Create(role); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(role.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.FindByID(role.ID); err == nil {
		t.Fatal("expected deleted role to be invisible")
	}
	roles, err := repo.Search(All(), nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("expected no visible roles, got %+v", roles)
	}
}
