// Where: internal/command/append_test.go
// What: Tests for the append command.
// Why: Ensure repeated runs accumulate descriptors in call order.
package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru-code/hostenv/internal/domain/hostctx"
	"github.com/poruru-code/hostenv/internal/domain/registry"
	"github.com/poruru-code/hostenv/internal/infra/store"
)

func TestAppendAccumulatesAcrossRuns(t *testing.T) {
	env := newTestEnv(t)
	if code := env.run(t, "append", "foo-bar123.brevlab.com", "abc-xy.example.com"); code != 0 {
		t.Fatalf("first append: exit %d: %s", code, env.out.String())
	}
	if code := env.run(t, "append", "single"); code != 0 {
		t.Fatalf("second append: exit %d: %s", code, env.out.String())
	}
	if !strings.Contains(env.out.String(), "(3 total)") {
		t.Fatalf("unexpected output: %q", env.out.String())
	}

	reg, err := store.Load(filepath.Join(env.dir, ".hostenv", "registry.json"))
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	want := []hostctx.HostnameContext{
		{Hostname: "foo-bar123.brevlab.com", IsBrev: true, BrevID: "bar"},
		{Hostname: "abc-xy.example.com", IsBrev: false, BrevID: "xy"},
		{Hostname: "single", IsBrev: false, BrevID: ""},
	}
	if diff := cmp.Diff(want, reg.Contexts(registry.DefaultPath())); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendUsesConfiguredNamespaces(t *testing.T) {
	env := newTestEnv(t)
	config := "plugin: site\nfeature: vars\nregistry: out/registry.yaml\n"
	if err := os.WriteFile(filepath.Join(env.dir, "hostenv.yaml"), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if code := env.run(t, "append", "foo-bar123.brevlab.com"); code != 0 {
		t.Fatalf("append: exit %d: %s", code, env.out.String())
	}
	if !strings.Contains(env.out.String(), "site.vars.data") {
		t.Fatalf("unexpected output: %q", env.out.String())
	}
	reg, err := store.Load(filepath.Join(env.dir, "out", "registry.yaml"))
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	if got := reg.Len(registry.Path{Plugin: "site", Feature: "vars"}); got != 1 {
		t.Fatalf("expected one entry, got %d", got)
	}
}

func TestAppendRegistryFlagAndEnvHostname(t *testing.T) {
	env := newTestEnv(t)
	env.deps.LookupHostname = func() (string, bool) { return "abc-xy.example.com", true }
	if code := env.run(t, "append", "-r", "custom.json"); code != 0 {
		t.Fatalf("append: exit %d: %s", code, env.out.String())
	}
	reg, err := store.Load(filepath.Join(env.dir, "custom.json"))
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	ctxs := reg.Contexts(registry.DefaultPath())
	if len(ctxs) != 1 || ctxs[0].Hostname != "abc-xy.example.com" {
		t.Fatalf("unexpected contexts: %+v", ctxs)
	}
}

func TestAppendRejectsCorruptRegistry(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if code := env.run(t, "append", "-r", path, "single"); code == 0 {
		t.Fatalf("expected non-zero exit for corrupt registry")
	}
	if !strings.Contains(env.out.String(), "decode registry") {
		t.Fatalf("unexpected output: %q", env.out.String())
	}
}
