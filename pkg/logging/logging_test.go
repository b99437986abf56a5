package logging

import "testing"

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"DEBUG", "debug"},
		{" warning ", "warn"},
		{"nope", ""},
	}
	for _, tt := range tests {
		got := normalizeLevel(tt.in)
		if tt.want == "" && got != "" {
			t.Errorf("normalizeLevel(%q) = %q, want empty", tt.in, got)
		}
		if tt.want != "" && got == "" {
			t.Errorf("normalizeLevel(%q) returned empty, want a level", tt.in)
		}
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var p *Provider
	log := p.Get("adapter")
	if _, ok := log.(noopLogger); !ok {
		t.Fatalf("expected noop logger, got %T", log)
	}
	log.Info("discarded")
}

func TestSetProviderNilRestoresDefault(t *testing.T) {
	SetProvider(nil)
	if Get("layers") == nil {
		t.Fatal("expected a logger from the default provider")
	}
}
