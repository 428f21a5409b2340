package integration

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/anbessa/iam-backend/internal/domain"
)

func regularTypeID(t *testing.T, env *serverEnv) uint {
	t.Helper()
	var ut domain.UserType
	if err := env.db.Where("name = ?", "Regular").First(&ut).Error; err != nil {
		t.Fatalf("load regular user type: %v", err)
	}
	return ut.ID
}

func roleIDByName(t *testing.T, env *serverEnv, name string) uint {
	t.Helper()
	var role domain.Role
	if err := env.db.Where("name = ?", name).First(&role).Error; err != nil {
		t.Fatalf("load role %q: %v", name, err)
	}
	return role.ID
}

func TestRegularUserIsForbiddenOnGuardedRoutes(t *testing.T) {
	env := newServerEnv(t)
	adminToken := env.login(t, adminUsername, adminPassword)
	env.createUser(t, adminToken, "Regular Rex", "rex", "rex-password", regularTypeID(t, env))

	token := env.login(t, "rex", "rex-password")

	for _, path := range []string{
		"/api/v1/users",
		"/api/v1/roles",
		"/api/v1/permissions",
		"/api/v1/user-types",
	} {
		resp, _ := env.do(t, http.MethodGet, path, token, nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("GET %s: expected 403 for unprivileged user, got %d", path, resp.StatusCode)
		}
	}
}

func TestGrantedRoleUnlocksRoutesImmediately(t *testing.T) {
	env := newServerEnv(t)
	adminToken := env.login(t, adminUsername, adminPassword)
	code := env.createUser(t, adminToken, "Promoted Pia", "pia", "pia-password", regularTypeID(t, env))
	token := env.login(t, "pia", "pia-password")

	resp, _ := env.do(t, http.MethodGet, "/api/v1/users", token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 before the grant, got %d", resp.StatusCode)
	}

	adminRole := roleIDByName(t, env, "Administrator")
	resp, raw := env.do(t, http.MethodPost, "/api/v1/users/"+code+"/roles", adminToken, map[string]any{
		"role_id": adminRole,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assign role: status %d body %s", resp.StatusCode, raw)
	}

	// Permissions are loaded per request, so the same token now passes.
	resp, _ = env.do(t, http.MethodGet, "/api/v1/users", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after the grant, got %d", resp.StatusCode)
	}

	// Revocation is equally immediate.
	resp, _ = env.do(t, http.MethodDelete, "/api/v1/users/"+code+"/roles/"+strconv.FormatUint(uint64(adminRole), 10), adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove role: status %d", resp.StatusCode)
	}
	resp, _ = env.do(t, http.MethodGet, "/api/v1/users", token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 after revocation, got %d", resp.StatusCode)
	}
}

func TestUserTypeRoutesAreSuperAdminOnly(t *testing.T) {
	env := newServerEnv(t)
	adminToken := env.login(t, adminUsername, adminPassword)
	code := env.createUser(t, adminToken, "Role Holder", "holder", "holder-password", regularTypeID(t, env))

	// Even the full Administrator role does not open the user-type routes.
	resp, raw := env.do(t, http.MethodPost, "/api/v1/users/"+code+"/roles", adminToken, map[string]any{
		"role_id": roleIDByName(t, env, "Administrator"),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assign role: status %d body %s", resp.StatusCode, raw)
	}

	token := env.login(t, "holder", "holder-password")
	resp, _ = env.do(t, http.MethodGet, "/api/v1/user-types", token, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 on user types for non-super-admin, got %d", resp.StatusCode)
	}

	resp, raw = env.do(t, http.MethodGet, "/api/v1/user-types", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for super admin, got %d body %s", resp.StatusCode, raw)
	}
	var types []domain.UserType
	if err := json.Unmarshal(raw, &types); err != nil {
		t.Fatalf("decode user types: %v", err)
	}
	if len(types) < 2 {
		t.Fatalf("expected seeded user types, got %+v", types)
	}
}
