package builtin

import (
	"context"
	"strings"
	"testing"

	"helpdesk-server/llm"
)

func TestGenerate(t *testing.T) {
	p, err := NewProvider(&llm.Config{})
	if err != nil {
		t.Fatalf("NewProvider = %v", err)
	}
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize = %v", err)
	}

	tests := []struct {
		name      string
		question  string
		wantHello bool
	}{
		{"greeting", "Hello, is anyone there?", true},
		{"short hi", "hi", true},
		{"plain question", "Where is my order?", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := []llm.Message{
				{Role: "system", Content: "instructions"},
				{Role: "user", Content: tt.question},
			}
			got, err := p.Generate(context.Background(), msgs)
			if err != nil {
				t.Fatalf("Generate = %v", err)
			}
			if got == "" {
				t.Fatal("Generate returned an empty answer")
			}
			if tt.wantHello != strings.HasPrefix(got, "Hello!") {
				t.Errorf("Generate(%q) greeting prefix = %v, want %v", tt.question, !tt.wantHello, tt.wantHello)
			}
		})
	}
}

func TestGenerate_NoUserMessage(t *testing.T) {
	p, _ := NewProvider(&llm.Config{})
	got, err := p.Generate(context.Background(), []llm.Message{{Role: "system", Content: "x"}})
	if err != nil || got == "" {
		t.Errorf("Generate = %q, %v, want canned answer", got, err)
	}
}
