package service

import (
	"testing"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	repogomock "github.com/anbessa/iam-backend/internal/repository/gomock"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestRoleServiceCreateFindsOrCreates(t *testing.T) {
	t.Run("existing name returns the stored role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		roles.EXPECT().FindByName("Administrator").Return(&domain.Role{ID: 2, Name: "Administrator"}, nil)
		svc := NewRoleService(roles, nil, nil)

		role, err := svc.Create("Administrator", "ignored", 1)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if role.ID != 2 {
			t.Fatalf("expected existing role, got %+v", role)
		}
	})

	t.Run("new name persists a role stamped with the actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		roles.EXPECT().FindByName("Auditor").Return(nil, gorm.ErrRecordNotFound)
		roles.EXPECT().FindDeletedByName("Auditor").Return(nil, gorm.ErrRecordNotFound)
		roles.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *domain.Role) error {
			if r.Name != "Auditor" || r.CreatedBy != 7 || r.UpdatedBy != 7 {
				t.Fatalf("unexpected role on create: %+v", r)
			}
			r.ID = 11
			return nil
		})
		svc := NewRoleService(roles, nil, nil)

		role, err := svc.Create("Auditor", "read only", 7)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if role.ID != 11 {
			t.Fatalf("expected persisted role, got %+v", role)
		}
	})

	t.Run("soft-deleted name restores the old row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		tombstone := &domain.Role{ID: 11, Name: "Auditor"}
		gomock.InOrder(
			roles.EXPECT().FindByName("Auditor").Return(nil, gorm.ErrRecordNotFound),
			roles.EXPECT().FindDeletedByName("Auditor").Return(tombstone, nil),
			roles.EXPECT().Restore(tombstone, map[string]any{"description": "read only", "updated_by": uint(7)}).Return(nil),
			roles.EXPECT().FindByID(uint(11)).Return(&domain.Role{ID: 11, Name: "Auditor", Description: "read only"}, nil),
		)
		svc := NewRoleService(roles, nil, nil)

		role, err := svc.Create("Auditor", "read only", 7)
		if err != nil {
			t.Fatalf("Create after delete: %v", err)
		}
		if role.ID != 11 || role.Description != "read only" {
			t.Fatalf("expected restored role, got %+v", role)
		}
	})

	t.Run("losing an insert race returns the winning row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		gomock.InOrder(
			roles.EXPECT().FindByName("Auditor").Return(nil, gorm.ErrRecordNotFound),
			roles.EXPECT().FindDeletedByName("Auditor").Return(nil, gorm.ErrRecordNotFound),
			roles.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey),
			roles.EXPECT().FindByName("Auditor").Return(&domain.Role{ID: 3, Name: "Auditor"}, nil),
		)
		svc := NewRoleService(roles, nil, nil)

		role, err := svc.Create("Auditor", "read only", 7)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if role.ID != 3 {
			t.Fatalf("expected the concurrently created role, got %+v", role)
		}
	})
}

func TestRoleServiceAssignPermission(t *testing.T) {
	t.Run("missing role is validation tagged to role_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		roles.EXPECT().FindByID(uint(40)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewRoleService(roles, nil, nil)

		_, err := svc.AssignPermission(40, 1, 1)
		fields := apperr.FieldsOf(err)
		if len(fields) != 1 || fields[0].Field != "role_id" {
			t.Fatalf("expected role_id field error, got %v", err)
		}
	})

	t.Run("missing permission is validation tagged to permission_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		perms := repogomock.NewMockPermissionRepository(ctrl)
		roles.EXPECT().FindByID(uint(4)).Return(&domain.Role{ID: 4}, nil)
		perms.EXPECT().FindByID(uint(90)).Return(nil, gorm.ErrRecordNotFound)
		svc := NewRoleService(roles, perms, nil)

		_, err := svc.AssignPermission(4, 90, 1)
		fields := apperr.FieldsOf(err)
		if len(fields) != 1 || fields[0].Field != "permission_id" {
			t.Fatalf("expected permission_id field error, got %v", err)
		}
	})

	t.Run("assign returns the reloaded role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		perms := repogomock.NewMockPermissionRepository(ctrl)
		rolePerms := repogomock.NewMockRolePermissionRepository(ctrl)
		granted := domain.Permission{ID: 6, Type: domain.PermissionRead, Resource: domain.ResourceUser}
		gomock.InOrder(
			roles.EXPECT().FindByID(uint(4)).Return(&domain.Role{ID: 4}, nil),
			perms.EXPECT().FindByID(uint(6)).Return(&granted, nil),
			rolePerms.EXPECT().Assign(uint(4), uint(6), uint(2)).Return(true, nil),
			roles.EXPECT().FindByID(uint(4)).Return(&domain.Role{ID: 4, Permissions: []domain.Permission{granted}}, nil),
		)
		svc := NewRoleService(roles, perms, rolePerms)

		role, err := svc.AssignPermission(4, 6, 2)
		if err != nil {
			t.Fatalf("AssignPermission: %v", err)
		}
		if len(role.Permissions) != 1 || role.Permissions[0].ID != 6 {
			t.Fatalf("expected refreshed permission set, got %+v", role.Permissions)
		}
	})

	t.Run("repeated assign is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		roles := repogomock.NewMockRoleRepository(ctrl)
		perms := repogomock.NewMockPermissionRepository(ctrl)
		rolePerms := repogomock.NewMockRolePermissionRepository(ctrl)
		roles.EXPECT().FindByID(uint(4)).Return(&domain.Role{ID: 4}, nil).Times(2)
		perms.EXPECT().FindByID(uint(6)).Return(&domain.Permission{ID: 6}, nil)
		rolePerms.EXPECT().Assign(uint(4), uint(6), uint(2)).Return(false, nil)
		svc := NewRoleService(roles, perms, rolePerms)

		if _, err := svc.AssignPermission(4, 6, 2); err != nil {
			t.Fatalf("expected idempotent assign, got %v", err)
		}
	})
}

func TestRoleServiceRemovePermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	roles := repogomock.NewMockRoleRepository(ctrl)
	perms := repogomock.NewMockPermissionRepository(ctrl)
	rolePerms := repogomock.NewMockRolePermissionRepository(ctrl)
	roles.EXPECT().FindByID(uint(4)).Return(&domain.Role{ID: 4}, nil)
	perms.EXPECT().FindByID(uint(6)).Return(&domain.Permission{ID: 6}, nil)
	rolePerms.EXPECT().Remove(uint(4), uint(6)).Return(false, nil)
	svc := NewRoleService(roles, perms, rolePerms)

	removed, err := svc.RemovePermission(4, 6)
	if err != nil {
		t.Fatalf("RemovePermission: %v", err)
	}
	if removed {
		t.Fatal("expected removal of an absent grant to report false")
	}
}

func TestRoleServiceFindByIDMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	roles := repogomock.NewMockRoleRepository(ctrl)
	roles.EXPECT().FindByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)
	svc := NewRoleService(roles, nil, nil)

	_, err := svc.FindByID(404)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRoleServiceUpdateSkipsEmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	roles := repogomock.NewMockRoleRepository(ctrl)
	stored := &domain.Role{ID: 4, Name: "Auditor", Description: "read only"}
	gomock.InOrder(
		roles.EXPECT().FindByID(uint(4)).Return(stored, nil),
		roles.EXPECT().UpdateFields(stored, map[string]any{"updated_by": uint(2), "name": "Reviewer"}).Return(nil),
		roles.EXPECT().FindByID(uint(4)).Return(&domain.Role{ID: 4, Name: "Reviewer", Description: "read only"}, nil),
	)
	svc := NewRoleService(roles, nil, nil)

	role, err := svc.Update(4, "Reviewer", "", 2)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if role.Name != "Reviewer" || role.Description != "read only" {
		t.Fatalf("unexpected role after update: %+v", role)
	}
}
