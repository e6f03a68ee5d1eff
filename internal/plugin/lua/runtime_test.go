package lua

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/markstorm/internal/plugin"
)

func newTestRuntime(t *testing.T) (*Runtime, *plugin.Registry) {
	t.Helper()
	registry := plugin.NewRegistry()
	rt, err := NewRuntime(registry)
	if err != nil {
		t.Fatalf("NewRuntime failed: %v", err)
	}
	t.Cleanup(rt.Close)
	return rt, registry
}

func TestRegisterWrapFromLua(t *testing.T) {
	rt, registry := newTestRuntime(t)

	err := rt.DoString(`markstorm.register_wrap("highlight", "==")`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	a, err := registry.Get("highlight")
	if err != nil {
		t.Fatalf("action not registered: %v", err)
	}
	if a.Kind != plugin.KindWrap || a.Marker != "==" {
		t.Errorf("unexpected action %+v", a)
	}

	res, err := a.Apply("some note", 5, 9)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if res.Text != "some ==note==" {
		t.Errorf("Text = %q, want %q", res.Text, "some ==note==")
	}
}

func TestRegisterLinePrefixFromLua(t *testing.T) {
	rt, registry := newTestRuntime(t)

	err := rt.DoString(`markstorm.register_line_prefix("quote", "> ")`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	a, err := registry.Get("quote")
	if err != nil {
		t.Fatalf("action not registered: %v", err)
	}
	if a.Kind != plugin.KindLinePrefix || a.Marker != "> " {
		t.Errorf("unexpected action %+v", a)
	}
}

func TestRegisterReservedNameRaises(t *testing.T) {
	rt, _ := newTestRuntime(t)

	err := rt.DoString(`markstorm.register_wrap("bold", "**")`)
	if err == nil {
		t.Fatal("expected error for reserved name")
	}
	if !strings.Contains(err.Error(), "reserved") {
		t.Errorf("error should mention reserved name, got %v", err)
	}
}

func TestWrappedHelper(t *testing.T) {
	rt, _ := newTestRuntime(t)

	err := rt.DoString(`
		assert(markstorm.wrapped("**bold**", 2, 6, "**") == true)
		assert(markstorm.wrapped("plain", 0, 5, "**") == false)
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestSandboxExcludesIOAndOS(t *testing.T) {
	rt, _ := newTestRuntime(t)

	err := rt.DoString(`
		assert(io == nil, "io must not be available")
		assert(os == nil, "os must not be available")
	`)
	if err != nil {
		t.Fatalf("sandbox check failed: %v", err)
	}
}

func TestLoadScripts(t *testing.T) {
	rt, registry := newTestRuntime(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "actions.lua")
	script := `
markstorm.register_wrap("highlight", "==")
markstorm.register_line_prefix("quote", "> ")
`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := rt.LoadScripts([]string{path}); err != nil {
		t.Fatalf("LoadScripts failed: %v", err)
	}
	if registry.Len() != 2 {
		t.Errorf("expected 2 actions, got %d", registry.Len())
	}
}

func TestLoadScriptsMissingFile(t *testing.T) {
	rt, _ := newTestRuntime(t)

	err := rt.LoadScripts([]string{filepath.Join(t.TempDir(), "absent.lua")})
	if err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestRuntimeClosed(t *testing.T) {
	registry := plugin.NewRegistry()
	rt, err := NewRuntime(registry)
	if err != nil {
		t.Fatalf("NewRuntime failed: %v", err)
	}

	rt.Close()
	rt.Close() // second close is a no-op

	if err := rt.DoString(`return 1`); !errors.Is(err, ErrRuntimeClosed) {
		t.Errorf("expected ErrRuntimeClosed, got %v", err)
	}
}

func TestNilRegistry(t *testing.T) {
	if _, err := NewRuntime(nil); !errors.Is(err, ErrNilRegistry) {
		t.Errorf("expected ErrNilRegistry, got %v", err)
	}
}
