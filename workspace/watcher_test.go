package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type change struct {
	path string
	file *File
	err  error
}

func waitChange(t *testing.T, ch <-chan change) change {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}
	return change{}
}

func TestFileWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.tdop")
	if err := os.WriteFile(path, []byte("print a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ws := New()
	changes := make(chan change, 8)
	w := NewFileWatcher(ws, []string{path}, func(path string, f *File, err error) {
		changes <- change{path, f, err}
	})
	w.SetPollInterval(10 * time.Millisecond)
	w.Start()
	defer w.Stop()

	c := waitChange(t, changes)
	if c.err != nil || c.file == nil || c.file.ParseErr != nil {
		t.Fatalf("initial scan: %+v", c)
	}

	// Replace the file in one step, with its mtime pushed forward so the
	// change is seen on filesystems with coarse timestamps.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte("if a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(tmp, later, later); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	c = waitChange(t, changes)
	if c.file == nil || c.file.ParseErr == nil {
		t.Fatalf("expected parse error after edit, got %+v", c)
	}
	if ws.GetFile(path) != c.file {
		t.Error("workspace does not hold the rescanned file")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	c = waitChange(t, changes)
	if c.file != nil || c.err == nil {
		t.Fatalf("expected removal, got %+v", c)
	}
	if ws.GetFile(path) != nil {
		t.Error("removed file still in workspace")
	}
}

func TestFileWatcherStopWithoutStart(t *testing.T) {
	w := NewFileWatcher(New(), nil, func(string, *File, error) {})
	w.Stop()
	w.Stop()
}
