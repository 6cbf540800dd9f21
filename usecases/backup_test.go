package usecases

import (
	"encoding/json"
	"reflect"
	"testing"

	"helpdesk-server/db"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
)

func newBackupUseCase(t *testing.T) (*BackupUseCase, db.Database) {
	t.Helper()
	database := newTestDB(t)
	uc := NewBackupUseCase(
		repositories.NewUserGormRepository(database),
		repositories.NewRoleGormRepository(database),
		repositories.NewKnowledgeGormRepository(database),
		repositories.NewConversationGormRepository(database),
		repositories.NewSettingsGormRepository(database),
		repositories.NewCustomModelGormRepository(database),
	)
	return uc, database
}

// seedBackupFixture fills a database with one of everything. Timestamps are
// set explicitly so list ordering is deterministic on both sides of a
// round trip.
func seedBackupFixture(t *testing.T, uc *BackupUseCase) {
	t.Helper()

	users := []*entities.User{
		{Username: "Root", PasswordHash: "$2a$10$roothash", Role: entities.RoleSuperAdmin,
			Email: "root@example.com", Verified: true,
			CreatedAt: "2026-01-01T10:00:00Z", UpdatedAt: "2026-01-01T10:00:00Z"},
		{Username: "Agent", PasswordHash: "$2a$10$agenthash", Role: entities.RoleSupport,
			FirstName: "Sam", LastName: "Agent", LastIP: "10.0.0.2",
			CreatedAt: "2026-01-02T10:00:00Z", UpdatedAt: "2026-01-02T10:00:00Z"},
	}
	for _, u := range users {
		if err := uc.UserRepo.Create(u); err != nil {
			t.Fatalf("seed user %s: %v", u.Username, err)
		}
	}

	perms := entities.DefaultPermissions(entities.RoleSupport)
	perms.ManageKnowledge = true
	if err := uc.RoleRepo.Save(&perms); err != nil {
		t.Fatalf("seed role: %v", err)
	}

	entries := []*entities.KnowledgeEntry{
		{Tag: "shipping", Content: "We ship worldwide.", UpdatedBy: "root",
			CreatedAt: "2026-01-03T10:00:00Z", UpdatedAt: "2026-01-03T10:00:00Z"},
		{Tag: "returns", Content: "30 day returns.", UpdatedBy: "root",
			CreatedAt: "2026-01-04T10:00:00Z", UpdatedAt: "2026-01-04T10:00:00Z"},
	}
	for _, e := range entries {
		if err := uc.KnowledgeRepo.Create(e); err != nil {
			t.Fatalf("seed knowledge %s: %v", e.Tag, err)
		}
	}

	conv := &entities.Conversation{
		Username: "visitor", UserName: "Vi Sitor", UserEmail: "v@example.com",
		StartedAt: "2026-01-05T10:00:00Z",
	}
	if err := uc.ConversationRepo.Create(conv); err != nil {
		t.Fatalf("seed conversation: %v", err)
	}
	msgs := []*entities.Message{
		{ConversationID: conv.ID, Sender: entities.SenderUser, Text: "hi", Timestamp: "2026-01-05T10:00:01Z"},
		{ConversationID: conv.ID, Sender: entities.SenderBot, Text: "hello", Timestamp: "2026-01-05T10:00:02Z", Feedback: entities.FeedbackUp},
	}
	for _, m := range msgs {
		if err := uc.ConversationRepo.AppendMessage(m); err != nil {
			t.Fatalf("seed message: %v", err)
		}
	}

	if err := uc.SettingsRepo.SaveModelConfig(&entities.ModelConfig{
		Provider: "openrouter", ModelID: "meta-llama/llama-3-8b", Temperature: 0.4, TopP: 0.9, MaxTokens: 800, Instruction: "be nice",
	}); err != nil {
		t.Fatalf("seed model config: %v", err)
	}
	if err := uc.SettingsRepo.SaveCompanyInfo(&entities.CompanyInfo{
		Name: "Acme", WelcomeMessage: "Hello!", PrimaryColor: "#ff0000", SupportEmail: "help@acme.test",
	}); err != nil {
		t.Fatalf("seed company info: %v", err)
	}
	if err := uc.SettingsRepo.SaveSmtpConfig(&entities.SmtpConfig{
		Host: "smtp.acme.test", Port: 587, Username: "mailer", Password: "mailpass", UseTLS: true,
	}); err != nil {
		t.Fatalf("seed smtp config: %v", err)
	}
	if err := uc.CustomModelRepo.Create(&entities.CustomModel{ModelID: "acme/custom-1", Label: "Custom"}); err != nil {
		t.Fatalf("seed custom model: %v", err)
	}
}

func TestBackup_FullRoundTrip(t *testing.T) {
	source, _ := newBackupUseCase(t)
	seedBackupFixture(t, source)

	exported, err := source.Export(PartFull)
	if err != nil {
		t.Fatalf("Export(full) = %v", err)
	}

	// Through JSON and back, as the HTTP endpoints do.
	raw, err := json.Marshal(exported)
	if err != nil {
		t.Fatalf("marshal backup = %v", err)
	}
	var payload BackupData
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal backup = %v", err)
	}

	target, _ := newBackupUseCase(t)
	if err := target.Restore(&payload); err != nil {
		t.Fatalf("Restore = %v", err)
	}

	reExported, err := target.Export(PartFull)
	if err != nil {
		t.Fatalf("re-Export(full) = %v", err)
	}
	if !reflect.DeepEqual(exported, reExported) {
		t.Errorf("round trip changed the data\n before: %+v\n after:  %+v", exported, reExported)
	}

	// Restored users keep their password hashes, so they can still log in.
	u, err := target.UserRepo.GetByUsername("agent")
	if err != nil {
		t.Fatalf("GetByUsername after restore = %v", err)
	}
	if u.PasswordHash != "$2a$10$agenthash" {
		t.Errorf("restored password hash = %q, want preserved", u.PasswordHash)
	}
	if u.CreatedAt != "2026-01-02T10:00:00Z" {
		t.Errorf("restored created_at = %q, want archived timestamp kept", u.CreatedAt)
	}
}

func TestBackup_PartsExportOnlyTheirSection(t *testing.T) {
	uc, _ := newBackupUseCase(t)
	seedBackupFixture(t, uc)

	tests := []struct {
		part  string
		check func(*BackupData) bool
	}{
		{PartUsers, func(d *BackupData) bool {
			return len(d.Users) == 2 && len(d.Roles) == 5 && d.Knowledge == nil && d.Conversations == nil && d.ModelConfig == nil
		}},
		{PartKB, func(d *BackupData) bool {
			return d.Users == nil && len(d.Knowledge) == 2 && d.Conversations == nil
		}},
		{PartLogs, func(d *BackupData) bool {
			return d.Users == nil && d.Knowledge == nil && len(d.Conversations) == 1 && len(d.Conversations[0].Messages) == 2
		}},
		{PartConfig, func(d *BackupData) bool {
			return d.Users == nil && d.ModelConfig != nil && d.CompanyInfo != nil && d.SmtpConfig != nil && len(d.CustomModels) == 1
		}},
	}
	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			data, err := uc.Export(tt.part)
			if err != nil {
				t.Fatalf("Export(%s) = %v", tt.part, err)
			}
			if !tt.check(data) {
				t.Errorf("Export(%s) returned unexpected sections: %+v", tt.part, data)
			}
		})
	}

	if _, err := uc.Export("everything"); err == nil {
		t.Error("Export(everything) succeeded, want error")
	}
}

func TestRestore_ShallowMerge(t *testing.T) {
	uc, _ := newBackupUseCase(t)
	seedBackupFixture(t, uc)

	// Restoring only a knowledge section replaces the knowledge base and
	// leaves every other section alone.
	payload := &BackupData{
		Knowledge: []entities.KnowledgeEntry{
			{ID: "kb-new", Tag: "faq", Content: "Replacement entry.",
				CreatedAt: "2026-02-01T00:00:00Z", UpdatedAt: "2026-02-01T00:00:00Z"},
		},
	}
	if err := uc.Restore(payload); err != nil {
		t.Fatalf("Restore = %v", err)
	}

	entries, err := uc.KnowledgeRepo.GetAll()
	if err != nil {
		t.Fatalf("knowledge GetAll = %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "kb-new" {
		t.Errorf("knowledge after partial restore = %+v, want the single replacement entry", entries)
	}

	users, err := uc.UserRepo.GetAll()
	if err != nil {
		t.Fatalf("users GetAll = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("users after knowledge-only restore = %d, want untouched 2", len(users))
	}
	cfg, err := uc.SettingsRepo.GetModelConfig()
	if err != nil {
		t.Fatalf("GetModelConfig = %v", err)
	}
	if cfg.Provider != "openrouter" {
		t.Errorf("model config after knowledge-only restore = %+v, want untouched", cfg)
	}

	if err := uc.Restore(nil); err == nil {
		t.Error("Restore(nil) succeeded, want error")
	}
}
