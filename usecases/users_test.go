package usecases

import (
	"errors"
	"fmt"
	"testing"

	"helpdesk-server/entities"
	"helpdesk-server/repositories"
)

func newUserUseCase(t *testing.T) *UserUseCase {
	t.Helper()
	return NewUserUseCase(repositories.NewUserGormRepository(newTestDB(t)))
}

// superadmin returns an actor that outranks everything.
func superadmin() *entities.User {
	return &entities.User{ID: "actor-super", Username: "root", Role: entities.RoleSuperAdmin}
}

func TestCreateUser_DuplicateUsernameCaseInsensitive(t *testing.T) {
	uc := newUserUseCase(t)
	actor := superadmin()

	first := &entities.User{Username: "Alice", Role: entities.RoleSupport}
	if err := uc.CreateUser(actor, first, "password123"); err != nil {
		t.Fatalf("CreateUser(Alice) = %v, want nil", err)
	}

	for _, dup := range []string{"alice", "ALICE", "aLiCe"} {
		t.Run(dup, func(t *testing.T) {
			err := uc.CreateUser(actor, &entities.User{Username: dup, Role: entities.RoleSupport}, "password123")
			if !errors.Is(err, ErrDuplicateUsername) {
				t.Errorf("CreateUser(%s) = %v, want ErrDuplicateUsername", dup, err)
			}
		})
	}

	// The rejected creates must not have written anything.
	count, err := uc.UserRepo.Count()
	if err != nil {
		t.Fatalf("Count() = %v", err)
	}
	if count != 1 {
		t.Errorf("user count after duplicate rejections = %d, want 1", count)
	}

	// The original account is untouched.
	stored, err := uc.UserRepo.GetByUsername("alice")
	if err != nil {
		t.Fatalf("GetByUsername(alice) = %v", err)
	}
	if stored.Username != "Alice" {
		t.Errorf("stored username = %q, want %q", stored.Username, "Alice")
	}
}

func TestListUsers_Pagination(t *testing.T) {
	uc := newUserUseCase(t)
	actor := superadmin()

	for i := 0; i < 15; i++ {
		u := &entities.User{Username: fmt.Sprintf("agent%02d", i), Role: entities.RoleSupport}
		if err := uc.CreateUser(actor, u, "password123"); err != nil {
			t.Fatalf("CreateUser(agent%02d) = %v", i, err)
		}
	}

	page1, total, err := uc.ListUsers("", 1, 10)
	if err != nil {
		t.Fatalf("ListUsers(page 1) = %v", err)
	}
	if total != 15 {
		t.Errorf("total = %d, want 15", total)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 size = %d, want 10", len(page1))
	}

	page2, total, err := uc.ListUsers("", 2, 10)
	if err != nil {
		t.Fatalf("ListUsers(page 2) = %v", err)
	}
	if total != 15 {
		t.Errorf("total = %d, want 15", total)
	}
	if len(page2) != 5 {
		t.Errorf("page 2 size = %d, want 5", len(page2))
	}

	page3, _, err := uc.ListUsers("", 3, 10)
	if err != nil {
		t.Fatalf("ListUsers(page 3) = %v", err)
	}
	if len(page3) != 0 {
		t.Errorf("page 3 size = %d, want 0", len(page3))
	}
}

func TestListUsers_SearchTokensAnded(t *testing.T) {
	uc := newUserUseCase(t)
	actor := superadmin()

	users := []*entities.User{
		{Username: "jsmith", FirstName: "John", LastName: "Smith", Email: "john@example.com", Role: entities.RoleSupport},
		{Username: "jdoe", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Role: entities.RoleSupport},
		{Username: "asmith", FirstName: "Anna", LastName: "Smith", Email: "anna@example.com", Role: entities.RoleSupport},
	}
	for _, u := range users {
		if err := uc.CreateUser(actor, u, "password123"); err != nil {
			t.Fatalf("CreateUser(%s) = %v", u.Username, err)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"smith", 2},
		{"SMITH", 2},
		{"john smith", 1},
		{"smith anna", 1},
		{"doe smith", 0},
		{"example.com", 3},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, total, err := uc.ListUsers(tt.query, 1, 50)
			if err != nil {
				t.Fatalf("ListUsers(%q) = %v", tt.query, err)
			}
			if total != tt.want || len(got) != tt.want {
				t.Errorf("ListUsers(%q) = %d results (total %d), want %d", tt.query, len(got), total, tt.want)
			}
		})
	}
}

func TestUpdateUser_RankRules(t *testing.T) {
	uc := newUserUseCase(t)
	root := superadmin()

	seed := map[string]*entities.User{}
	for _, role := range []string{entities.RoleAdmin, entities.RoleManager, entities.RoleSupervisor, entities.RoleSupport} {
		u := &entities.User{Username: "the-" + role, Role: role}
		if err := uc.CreateUser(root, u, "password123"); err != nil {
			t.Fatalf("seed CreateUser(%s) = %v", role, err)
		}
		seed[role] = u
	}

	tests := []struct {
		name      string
		actorRole string
		target    string
		allowed   bool
	}{
		{"supervisor cannot edit manager", entities.RoleSupervisor, entities.RoleManager, false},
		{"supervisor cannot edit admin", entities.RoleSupervisor, entities.RoleAdmin, false},
		{"supervisor cannot edit supervisor", entities.RoleSupervisor, entities.RoleSupervisor, false},
		{"supervisor can edit support", entities.RoleSupervisor, entities.RoleSupport, true},
		{"manager can edit supervisor", entities.RoleManager, entities.RoleSupervisor, true},
		{"manager can edit support", entities.RoleManager, entities.RoleSupport, true},
		{"manager cannot edit admin", entities.RoleManager, entities.RoleAdmin, false},
		{"admin can edit manager", entities.RoleAdmin, entities.RoleManager, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := &entities.User{ID: "actor-x", Username: "actor", Role: tt.actorRole}
			_, err := uc.UpdateUser(actor, seed[tt.target].ID, &UserUpdates{FirstName: "Edited"})
			if tt.allowed && err != nil {
				t.Errorf("UpdateUser as %s on %s = %v, want nil", tt.actorRole, tt.target, err)
			}
			if !tt.allowed && !errors.Is(err, ErrForbidden) {
				t.Errorf("UpdateUser as %s on %s = %v, want ErrForbidden", tt.actorRole, tt.target, err)
			}
		})
	}
}

func TestUpdateUser_SelfEditForbidden(t *testing.T) {
	uc := newUserUseCase(t)
	root := superadmin()

	target := &entities.User{Username: "boss", Role: entities.RoleManager}
	if err := uc.CreateUser(root, target, "password123"); err != nil {
		t.Fatalf("CreateUser = %v", err)
	}

	// Even though manager > nothing applies, the actor IS the target.
	actor := &entities.User{ID: target.ID, Username: "boss", Role: entities.RoleManager}
	if _, err := uc.UpdateUser(actor, target.ID, &UserUpdates{FirstName: "Me"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("self UpdateUser = %v, want ErrForbidden", err)
	}
	if err := uc.DeleteUser(actor, target.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("self DeleteUser = %v, want ErrForbidden", err)
	}
}

func TestUpdateUser_RoleEscalationNeedsRank(t *testing.T) {
	uc := newUserUseCase(t)
	root := superadmin()

	target := &entities.User{Username: "promotee", Role: entities.RoleSupport}
	if err := uc.CreateUser(root, target, "password123"); err != nil {
		t.Fatalf("CreateUser = %v", err)
	}

	// A manager outranks support but not admin, so promoting the target to
	// admin has to fail even though editing it is otherwise allowed.
	manager := &entities.User{ID: "actor-m", Username: "mgr", Role: entities.RoleManager}
	if _, err := uc.UpdateUser(manager, target.ID, &UserUpdates{Role: entities.RoleAdmin}); !errors.Is(err, ErrForbidden) {
		t.Errorf("promote to admin by manager = %v, want ErrForbidden", err)
	}
	if _, err := uc.UpdateUser(manager, target.ID, &UserUpdates{Role: entities.RoleSupervisor}); err != nil {
		t.Errorf("promote to supervisor by manager = %v, want nil", err)
	}
}

func TestUpdateUser_VerifiedMergesLikeOtherFields(t *testing.T) {
	uc := newUserUseCase(t)
	root := superadmin()

	target := &entities.User{Username: "vera", Role: entities.RoleSupport, Verified: true}
	if err := uc.CreateUser(root, target, "password123"); err != nil {
		t.Fatalf("CreateUser = %v", err)
	}

	// A partial update that says nothing about verification leaves it alone.
	got, err := uc.UpdateUser(root, target.ID, &UserUpdates{FirstName: "Vera"})
	if err != nil {
		t.Fatalf("UpdateUser = %v", err)
	}
	if !got.Verified {
		t.Error("partial update cleared the verified flag")
	}

	unverify := false
	got, err = uc.UpdateUser(root, target.ID, &UserUpdates{Verified: &unverify})
	if err != nil {
		t.Fatalf("UpdateUser = %v", err)
	}
	if got.Verified {
		t.Error("explicit verified=false was not applied")
	}

	verify := true
	got, err = uc.UpdateUser(root, target.ID, &UserUpdates{Verified: &verify})
	if err != nil {
		t.Fatalf("UpdateUser = %v", err)
	}
	if !got.Verified {
		t.Error("explicit verified=true was not applied")
	}
}

func TestLogin(t *testing.T) {
	uc := newUserUseCase(t)
	root := superadmin()

	u := &entities.User{Username: "Agent", Role: entities.RoleSupport}
	if err := uc.CreateUser(root, u, "password123"); err != nil {
		t.Fatalf("CreateUser = %v", err)
	}

	got, err := uc.Login("agent", "password123", "10.0.0.1", "firefox")
	if err != nil {
		t.Fatalf("Login = %v, want nil", err)
	}
	if got.LastIP != "10.0.0.1" || got.LastDevice != "firefox" || got.LastLoginAt == "" {
		t.Errorf("login metadata not recorded: %+v", got)
	}

	if _, err := uc.Login("agent", "wrong-password", "", ""); err == nil {
		t.Error("Login with wrong password succeeded, want error")
	}
	if _, err := uc.Login("nobody", "password123", "", ""); err == nil {
		t.Error("Login with unknown user succeeded, want error")
	}
}

func TestBootstrap_OneShot(t *testing.T) {
	uc := newUserUseCase(t)

	needs, err := uc.NeedsSetup()
	if err != nil {
		t.Fatalf("NeedsSetup = %v", err)
	}
	if !needs {
		t.Fatal("NeedsSetup on empty database = false, want true")
	}

	admin, err := uc.Bootstrap("root", "root@example.com", "password123")
	if err != nil {
		t.Fatalf("Bootstrap = %v", err)
	}
	if admin.Role != entities.RoleSuperAdmin {
		t.Errorf("bootstrap role = %q, want %q", admin.Role, entities.RoleSuperAdmin)
	}

	if _, err := uc.Bootstrap("root2", "", "password123"); err == nil {
		t.Error("second Bootstrap succeeded, want error")
	}

	needs, err = uc.NeedsSetup()
	if err != nil {
		t.Fatalf("NeedsSetup = %v", err)
	}
	if needs {
		t.Error("NeedsSetup after bootstrap = true, want false")
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 15)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name        string
		page, limit int
		wantLen     int
		wantFirst   int
	}{
		{"first page", 1, 10, 10, 0},
		{"second page remainder", 2, 10, 5, 10},
		{"past the end", 3, 10, 0, 0},
		{"zero page clamps to one", 0, 10, 10, 0},
		{"zero limit defaults", 1, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.limit)
			if len(got) != tt.wantLen {
				t.Fatalf("Paginate(%d, %d) len = %d, want %d", tt.page, tt.limit, len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("Paginate(%d, %d)[0] = %d, want %d", tt.page, tt.limit, got[0], tt.wantFirst)
			}
		})
	}
}
