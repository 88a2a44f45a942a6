package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"
)

func TestIsAdmin(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM .user_roles. WHERE user_id = \\? AND role = \\?"),
			columns: []string{"role_id", "user_id", "role", "create_at"},
			rows:    [][]driver.Value{{int64(1), int64(9), "admin", time.Now()}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM .user_roles. WHERE user_id = \\? AND role = \\?"),
			columns: []string{"role_id", "user_id", "role", "create_at"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewRoleService(db, "super@planetcred.org")

	isAdmin, err := svc.IsAdmin(9)
	if err != nil {
		t.Fatalf("IsAdmin returned error: %v", err)
	}
	if !isAdmin {
		t.Fatal("expected admin")
	}

	isAdmin, err = svc.IsAdmin(4)
	if err != nil {
		t.Fatalf("IsAdmin returned error: %v", err)
	}
	if isAdmin {
		t.Fatal("expected non-admin")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBootstrapFirstAdminSucceedsOnce(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO user_roles .*WHERE NOT EXISTS`),
			result:  execResult(1),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`INSERT INTO user_roles .*WHERE NOT EXISTS`),
			result:  execResult(0),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewRoleService(db, "super@planetcred.org")

	if err := svc.BootstrapFirstAdmin(9); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}

	err := svc.BootstrapFirstAdmin(4)
	if !IsKind(err, KindAlreadyInitialized) {
		t.Fatalf("expected AlreadyInitialized, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRevokeAdminRequiresSuperAdmin(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewRoleService(db, "super@planetcred.org")

	err := svc.RevokeAdmin("other@planetcred.org", 4)
	if !IsKind(err, KindUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}

	// The caller check fails before any database work.
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRevokeAdminRefusesWhenUnconfigured(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewRoleService(db, "")

	if err := svc.RevokeAdmin("", 4); !IsKind(err, KindUnauthorized) {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
}

func TestRevokeAdminDeletesRoleRow(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM .user_roles. WHERE user_id = \\? AND role = \\?"),
			args:    []driver.Value{int64(4), "admin"},
			result:  execResult(1),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewRoleService(db, "super@planetcred.org")

	// Matching is case-insensitive so the configured identity survives
	// provider-side casing differences.
	if err := svc.RevokeAdmin("Super@PlanetCred.org", 4); err != nil {
		t.Fatalf("RevokeAdmin returned error: %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
