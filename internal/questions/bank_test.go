package questions

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBank(t *testing.T, dir, name string, qs []string) {
	t.Helper()
	data, err := json.Marshal(qs)
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
}

func TestLoadReadsCategoriesFromDir(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "romantic", []string{"q1", "q2", "q3"})
	writeBank(t, dir, "friends", []string{"f1", "f2"})
	// Non-JSON files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	bank, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	got := bank.Categories()
	want := []string{"friends", "romantic"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	if bank.Size("romantic") != 3 {
		t.Fatalf("size = %d, want 3", bank.Size("romantic"))
	}
}

func TestLoadRejectsMalformedBank(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed bank")
	}
}

func TestPickReturnsDistinctQuestions(t *testing.T) {
	qs := []string{"a", "b", "c", "d", "e", "f"}
	bank := New(map[string][]string{"romantic": qs})

	picked, err := bank.Pick("romantic", 4)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if len(picked) != 4 {
		t.Fatalf("picked %d questions, want 4", len(picked))
	}

	valid := make(map[string]struct{}, len(qs))
	for _, q := range qs {
		valid[q] = struct{}{}
	}
	seen := make(map[string]struct{}, len(picked))
	for _, q := range picked {
		if _, ok := valid[q]; !ok {
			t.Fatalf("picked unknown question %q", q)
		}
		if _, dup := seen[q]; dup {
			t.Fatalf("duplicate question %q", q)
		}
		seen[q] = struct{}{}
	}
}

func TestPickErrors(t *testing.T) {
	bank := New(map[string][]string{"romantic": {"a", "b"}})

	if _, err := bank.Pick("enemies", 1); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := bank.Pick("romantic", 3); !errors.Is(err, ErrNotEnoughQuestions) {
		t.Fatalf("expected ErrNotEnoughQuestions, got %v", err)
	}
	if _, err := bank.Pick("romantic", 0); !errors.Is(err, ErrNotEnoughQuestions) {
		t.Fatalf("expected ErrNotEnoughQuestions for zero, got %v", err)
	}
}

func TestEnsureDefaultsSeedsAndPreserves(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "questions")

	if err := EnsureDefaults(dir); err != nil {
		t.Fatalf("ensure defaults: %v", err)
	}
	bank, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bank.Has("romantic") || !bank.Has("friends") {
		t.Fatalf("default categories missing: %v", bank.Categories())
	}

	// A user-edited bank must survive a second run.
	writeBank(t, dir, "romantic", []string{"only one"})
	if err := EnsureDefaults(dir); err != nil {
		t.Fatalf("ensure defaults again: %v", err)
	}
	bank, err = Load(dir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if bank.Size("romantic") != 1 {
		t.Fatalf("user bank overwritten, size = %d", bank.Size("romantic"))
	}
}
