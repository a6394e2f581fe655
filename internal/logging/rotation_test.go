package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newSmallWriter(t *testing.T, maxBytes int64, backups int) *RotatingWriter {
	t.Helper()
	rw, err := NewRotatingWriter(filepath.Join(t.TempDir(), FileName), RotationConfig{MaxBackups: backups})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	rw.maxBytes = maxBytes
	t.Cleanup(func() { _ = rw.Close() })
	return rw
}

func TestRotatingWriter_NoRotationWhenDisabled(t *testing.T) {
	rw := newSmallWriter(t, 0, 3)

	for i := 0; i < 10; i++ {
		if _, err := rw.Write([]byte(strings.Repeat("x", 100))); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if rw.Size() != 1000 {
		t.Errorf("Size() = %d, want 1000", rw.Size())
	}
	if _, err := os.Stat(rw.Path() + ".1"); !os.IsNotExist(err) {
		t.Error("no backup should exist when rotation is disabled")
	}
}

func TestRotatingWriter_Rotates(t *testing.T) {
	rw := newSmallWriter(t, 50, 2)

	write := func(s string) {
		t.Helper()
		if _, err := rw.Write([]byte(s)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	write(strings.Repeat("a", 40))
	write(strings.Repeat("b", 40)) // rotates: a -> .1
	write(strings.Repeat("c", 40)) // rotates: a -> .2, b -> .1
	write(strings.Repeat("d", 40)) // rotates: a dropped, b -> .2, c -> .1

	read := func(path string) string {
		t.Helper()
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", path, err)
		}
		return string(data)
	}

	if got := read(rw.Path()); got != strings.Repeat("d", 40) {
		t.Errorf("active file = %q", got)
	}
	if got := read(rw.Path() + ".1"); got != strings.Repeat("c", 40) {
		t.Errorf(".1 = %q", got)
	}
	if got := read(rw.Path() + ".2"); got != strings.Repeat("b", 40) {
		t.Errorf(".2 = %q", got)
	}
	if _, err := os.Stat(rw.Path() + ".3"); !os.IsNotExist(err) {
		t.Error("only MaxBackups backups should be kept")
	}
}

func TestRotatingWriter_ZeroBackupsTruncates(t *testing.T) {
	rw := newSmallWriter(t, 10, 0)

	_, _ = rw.Write([]byte("0123456789"))
	_, _ = rw.Write([]byte("abc"))

	data, err := os.ReadFile(rw.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("active file = %q, want %q", data, "abc")
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	rw := newSmallWriter(t, 0, 1)
	if err := rw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write after Close should fail")
	}
}

func TestRotatingWriter_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("existing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rw, err := NewRotatingWriter(path, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer rw.Close()

	if rw.Size() != int64(len("existing\n")) {
		t.Errorf("Size() = %d, want %d", rw.Size(), len("existing\n"))
	}
}

func TestRotatingWriter_RecoversFromFailedReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	rw, err := NewRotatingWriter(filepath.Join(dir, FileName), RotationConfig{MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	rw.maxBytes = 10
	t.Cleanup(func() { _ = rw.Close() })

	if _, err := rw.Write([]byte("first line")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Replace the log directory with a plain file so the reopen fails.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := rw.Write([]byte("second")); err == nil {
		t.Fatal("Write should report the failed reopen")
	} else if strings.Contains(err.Error(), "closed") {
		t.Errorf("error = %v, should not claim the writer is closed", err)
	}

	if err := os.Remove(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := rw.Write([]byte("third")); err != nil {
		t.Fatalf("Write after the directory returned failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil || string(data) != "third" {
		t.Errorf("log = %q, %v; want %q", data, err, "third")
	}
}
