package usecases

import (
	"errors"
	"testing"

	"helpdesk-server/entities"
	"helpdesk-server/repositories"
)

func newRoleUseCase(t *testing.T) *RoleUseCase {
	t.Helper()
	return NewRoleUseCase(repositories.NewRoleGormRepository(newTestDB(t)))
}

func TestRoles_SeededDefaults(t *testing.T) {
	uc := newRoleUseCase(t)

	rows, err := uc.GetAll()
	if err != nil {
		t.Fatalf("GetAll = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("seeded role rows = %d, want 5", len(rows))
	}

	support, err := uc.Get(entities.RoleSupport)
	if err != nil {
		t.Fatalf("Get(support) = %v", err)
	}
	if support.ManageUsers || !support.UseChat || !support.ViewKnowledge {
		t.Errorf("support defaults wrong: %+v", support)
	}

	admin, err := uc.Get(entities.RoleAdmin)
	if err != nil {
		t.Fatalf("Get(admin) = %v", err)
	}
	if !admin.ManageUsers || !admin.ManageBackups || !admin.ManageRoles {
		t.Errorf("admin defaults wrong: %+v", admin)
	}

	if _, err := uc.Get("owner"); err == nil {
		t.Error("Get(owner) succeeded, want error")
	}
}

func TestRoles_UpdateRules(t *testing.T) {
	uc := newRoleUseCase(t)
	admin := &entities.User{ID: "a", Username: "admin", Role: entities.RoleAdmin}

	tests := []struct {
		name      string
		actorRole string
		target    string
		allowed   bool
	}{
		{"admin edits support", entities.RoleAdmin, entities.RoleSupport, true},
		{"admin edits manager", entities.RoleAdmin, entities.RoleManager, true},
		{"manager edits support", entities.RoleManager, entities.RoleSupport, true},
		{"manager cannot edit manager", entities.RoleManager, entities.RoleManager, false},
		{"supervisor cannot edit supervisor", entities.RoleSupervisor, entities.RoleSupervisor, false},
		{"support cannot edit anything", entities.RoleSupport, entities.RoleSupport, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := &entities.User{ID: "x", Username: "x", Role: tt.actorRole}
			perms := entities.DefaultPermissions(tt.target)
			perms.DeleteLogs = true
			err := uc.Update(actor, &perms)
			if tt.allowed && err != nil {
				t.Errorf("Update as %s on %s = %v, want nil", tt.actorRole, tt.target, err)
			}
			if !tt.allowed && !errors.Is(err, ErrForbidden) {
				t.Errorf("Update as %s on %s = %v, want ErrForbidden", tt.actorRole, tt.target, err)
			}
		})
	}

	// The two top roles keep their seeded permissions no matter who asks.
	for _, fixed := range []string{entities.RoleSuperAdmin, entities.RoleAdmin} {
		perms := entities.DefaultPermissions(fixed)
		perms.ManageUsers = false
		superActor := &entities.User{ID: "s", Username: "s", Role: entities.RoleSuperAdmin}
		if err := uc.Update(superActor, &perms); err == nil {
			t.Errorf("Update on fixed role %s succeeded, want error", fixed)
		}
	}

	perms := entities.RolePermissions{Role: "owner"}
	if err := uc.Update(admin, &perms); err == nil {
		t.Error("Update with unknown role succeeded, want error")
	}
}

func TestRoles_UpdatePersists(t *testing.T) {
	uc := newRoleUseCase(t)
	admin := &entities.User{ID: "a", Username: "admin", Role: entities.RoleAdmin}

	perms := entities.DefaultPermissions(entities.RoleSupport)
	perms.ManageKnowledge = true
	perms.ViewStats = true
	if err := uc.Update(admin, &perms); err != nil {
		t.Fatalf("Update = %v", err)
	}

	got, err := uc.Get(entities.RoleSupport)
	if err != nil {
		t.Fatalf("Get = %v", err)
	}
	if !got.ManageKnowledge || !got.ViewStats {
		t.Errorf("updated flags not persisted: %+v", got)
	}
	if !got.Has(entities.CapManageKnowledge) || got.Has(entities.CapManageUsers) {
		t.Errorf("Has() disagrees with stored flags: %+v", got)
	}
}
