package locate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func touch(tb testing.TB, path string) {
	tb.Helper()
	if err := os.WriteFile(path, []byte("x,y,z\n"), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveExisting(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	path := filepath.Join(t.TempDir(), "dump.csv")
	touch(t, path)

	got, err := Resolve(path, t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != path {
		t.Fatalf("Resolve = %s; want %s", got, path)
	}
	if len(hook.AllEntries()) != 0 {
		t.Fatalf("unexpected log entries: %v", hook.AllEntries())
	}
}

func TestResolveFallback(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	want := filepath.Join(dir, "dump.csv")
	touch(t, want)

	got, err := Resolve(filepath.Join("no", "such", "dir", "dump.csv"), dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Fatalf("Resolve = %s; want %s", got, want)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Level != log.InfoLevel {
		t.Fatalf("expected an info notice, got %v", entry)
	}
	if !strings.Contains(entry.Message, "Couldn't find") {
		t.Fatalf("notice = %q", entry.Message)
	}
}

func TestResolveNotFound(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	dir := t.TempDir()
	_, err := Resolve("missing.csv", dir)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v; want fs.ErrNotExist", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%T; want *NotFoundError", err)
	}
	if nf.Path != "missing.csv" || nf.Fallback != filepath.Join(dir, "missing.csv") {
		t.Fatalf("got %+v", nf)
	}
	if !strings.Contains(err.Error(), "missing.csv") {
		t.Fatalf("message %q does not name the path", err.Error())
	}
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Fatalf("ExecutableDir = %s; want absolute", dir)
	}
}
