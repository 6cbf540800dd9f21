package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"helpdesk-server/auth"
	"helpdesk-server/db"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testFixture struct {
	router     *gin.Engine
	jwtManager *auth.JWTManager
	users      repositories.UserRepository
	roles      repositories.RoleRepository
}

func newFixture(t *testing.T, capability string) *testFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(gdb); err != nil {
		t.Fatalf("seed: %v", err)
	}
	database := &db.GormDatabase{DB: gdb}

	f := &testFixture{
		jwtManager: auth.NewJWTManager("test-secret", time.Hour),
		users:      repositories.NewUserGormRepository(database),
		roles:      repositories.NewRoleGormRepository(database),
	}

	router := gin.New()
	router.GET("/guarded",
		Auth(f.jwtManager, f.users),
		RequireCapability(f.roles, capability),
		func(c *gin.Context) {
			user, _ := CurrentUser(c)
			c.JSON(http.StatusOK, gin.H{"username": user.Username})
		})
	f.router = router
	return f
}

func (f *testFixture) addUser(t *testing.T, username, role string) string {
	t.Helper()
	if err := f.users.Create(&entities.User{Username: username, PasswordHash: "x", Role: role}); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	token, err := f.jwtManager.Generate(username, role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func (f *testFixture) get(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	f := newFixture(t, entities.CapViewLogs)

	if w := f.get(""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := f.get("garbage-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	// A valid token whose account has since been deleted.
	token := f.addUser(t, "ghost", entities.RoleSupport)
	users, _ := f.users.GetAll()
	if err := f.users.Delete(users[0].ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if w := f.get(token); w.Code != http.StatusUnauthorized {
		t.Errorf("deleted account: status = %d, want 401", w.Code)
	}
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		capability string
		want       int
	}{
		{"support may view logs", entities.RoleSupport, entities.CapViewLogs, http.StatusOK},
		{"support may use chat", entities.RoleSupport, entities.CapUseChat, http.StatusOK},
		{"support may not delete logs", entities.RoleSupport, entities.CapDeleteLogs, http.StatusForbidden},
		{"support may not manage users", entities.RoleSupport, entities.CapManageUsers, http.StatusForbidden},
		{"manager may manage users", entities.RoleManager, entities.CapManageUsers, http.StatusOK},
		{"admin may manage backups", entities.RoleAdmin, entities.CapManageBackups, http.StatusOK},
		{"supervisor may not manage backups", entities.RoleSupervisor, entities.CapManageBackups, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.capability)
			token := f.addUser(t, "caller", tt.role)
			if w := f.get(token); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

// Role permission edits apply on the next request because the flags are
// read from the database per call.
func TestRequireCapability_LiveEdits(t *testing.T) {
	f := newFixture(t, entities.CapDeleteLogs)
	token := f.addUser(t, "agent", entities.RoleSupport)

	if w := f.get(token); w.Code != http.StatusForbidden {
		t.Fatalf("before grant: status = %d, want 403", w.Code)
	}

	perms, err := f.roles.Get(entities.RoleSupport)
	if err != nil {
		t.Fatalf("get perms: %v", err)
	}
	perms.DeleteLogs = true
	if err := f.roles.Save(perms); err != nil {
		t.Fatalf("save perms: %v", err)
	}

	if w := f.get(token); w.Code != http.StatusOK {
		t.Errorf("after grant: status = %d, want 200", w.Code)
	}
}
