package importer

import (
	"os"
	"path/filepath"
	"testing"
)

// TestStateDBRoundTrip verifies mark/check semantics: a recorded workbook is
// found only when path, size and hash all match.
func TestStateDBRoundTrip(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer state.Close()

	const path = "/plans/program.xlsx"

	converted, err := state.IsConverted(path, 100, "abc")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if converted {
		t.Error("unrecorded workbook reported converted")
	}

	if err := state.MarkConverted(path, 100, "abc", "run-1"); err != nil {
		t.Fatalf("mark: %v", err)
	}

	converted, err = state.IsConverted(path, 100, "abc")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !converted {
		t.Error("recorded workbook not reported converted")
	}

	// Size or hash mismatch means the file changed.
	if converted, _ := state.IsConverted(path, 101, "abc"); converted {
		t.Error("size mismatch reported converted")
	}
	if converted, _ := state.IsConverted(path, 100, "def"); converted {
		t.Error("hash mismatch reported converted")
	}
}

// TestStateDBReplace verifies re-marking a path replaces the old entry.
func TestStateDBReplace(t *testing.T) {
	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer state.Close()

	const path = "/plans/program.xlsx"
	if err := state.MarkConverted(path, 100, "abc", "run-1"); err != nil {
		t.Fatal(err)
	}
	if err := state.MarkConverted(path, 200, "def", "run-2"); err != nil {
		t.Fatal(err)
	}

	if converted, _ := state.IsConverted(path, 100, "abc"); converted {
		t.Error("stale entry survived replace")
	}
	if converted, _ := state.IsConverted(path, 200, "def"); !converted {
		t.Error("replacement entry not found")
	}
}

// TestOpenStateDBCreatesDir verifies the state directory is created on demand.
func TestOpenStateDBCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	state, err := OpenStateDB(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer state.Close()

	if _, err := os.Stat(filepath.Join(dir, "state.db")); err != nil {
		t.Errorf("state.db not created: %v", err)
	}
}
