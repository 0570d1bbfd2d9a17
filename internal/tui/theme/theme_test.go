package theme

import "testing"

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "load plain theme", themeName: "plain", wantName: "plain"},
		{name: "name is case insensitive", themeName: "Latte", wantName: "latte"},
		{name: "empty name defaults to mocha", themeName: "", wantName: "mocha"},
		{name: "invalid theme falls back to mocha", themeName: "nonexistent", wantName: "mocha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := Load(tt.themeName)
			if th == nil {
				t.Fatal("Load returned nil")
			}
			if th.Name != tt.wantName {
				t.Fatalf("theme name = %q, want %q", th.Name, tt.wantName)
			}
			if th.Fg == "" || th.Bg == "" || th.Key == "" {
				t.Fatalf("theme %q has empty colors: %+v", th.Name, th)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	for _, name := range Available() {
		if !IsAvailable(name) {
			t.Fatalf("theme %q listed but not available", name)
		}
	}
	if IsAvailable("nonexistent") {
		t.Fatal("nonexistent theme reported available")
	}
}
