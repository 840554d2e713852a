package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every override so ambient CODETUTOR_* variables
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CODETUTOR_USER", "CODETUTOR_CONTENT_DIR", "CODETUTOR_DB",
		"CODETUTOR_LANGUAGE", "CODETUTOR_RUN_TIMEOUT_SECS",
		"CODETUTOR_DEBUG", "CODETUTOR_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s != Defaults() {
		t.Errorf("settings = %+v, want defaults", s)
	}
	if s.RunTimeout() != 10*time.Second {
		t.Errorf("run timeout = %v", s.RunTimeout())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "user: alice\ndefault_language: python\nrun_timeout_secs: 30\ndebug: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.User != "alice" || s.DefaultLanguage != "python" {
		t.Errorf("settings = %+v", s)
	}
	if s.RunTimeoutSecs != 30 || !s.Debug {
		t.Errorf("settings = %+v", s)
	}
	// Unset fields keep defaults.
	if s.ContentDir != "content" {
		t.Errorf("content dir = %q", s.ContentDir)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("user: alice\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("CODETUTOR_USER", "bob")
	t.Setenv("CODETUTOR_RUN_TIMEOUT_SECS", "5")
	t.Setenv("CODETUTOR_DEBUG", "true")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.User != "bob" || s.RunTimeoutSecs != 5 || !s.Debug {
		t.Errorf("settings = %+v", s)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("user: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := Settings{
		User: "alice", ContentDir: "c", DefaultLanguage: "go",
		RunTimeoutSecs: 15,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := Save(path, Settings{User: "custom", RunTimeoutSecs: 99}); err != nil {
		t.Fatalf("save: %v", err)
	}

	s, err := Reset(path)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s != Defaults() {
		t.Errorf("reset settings = %+v", s)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded != Defaults() {
		t.Errorf("file after reset = %+v", reloaded)
	}
}

func TestDefaultPathPrecedence(t *testing.T) {
	t.Setenv("CODETUTOR_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("path = %q", p)
	}

	t.Setenv("CODETUTOR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err = DefaultPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if p != filepath.Join("/tmp/xdg", "codetutor", "settings.yaml") {
		t.Errorf("path = %q", p)
	}
}
